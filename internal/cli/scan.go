package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/SeamusWaldron/nxcube/internal/gocube"
)

// scanForGoCube scans for GoCube devices, retrying up to maxAttempts times.
// The returned client is always usable, even when nothing was found.
func scanForGoCube(ctx context.Context, scanTime time.Duration, maxAttempts int) (*gocube.Client, []gocube.Device, error) {
	client, err := gocube.NewClient(logger.Logger)
	if err != nil {
		return nil, nil, fmt.Errorf("BLE not available: %w", err)
	}

	fmt.Println("Scanning for GoCube devices...")

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		devices, err := client.Scan(ctx, scanTime)
		if err != nil {
			fmt.Printf("Scan %d failed: %v\n", attempt, err)
			continue
		}

		if len(devices) > 0 {
			fmt.Printf("Found: %s\n", devices[0].Name)
			return client, devices, nil
		}

		if ctx.Err() != nil {
			return client, nil, ctx.Err()
		}
		if attempt < maxAttempts {
			fmt.Printf("Scan %d: No devices found, retrying...\n", attempt)
		}
	}

	return client, nil, nil
}
