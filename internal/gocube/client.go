package gocube

import (
	"context"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/SeamusWaldron/nxcube"
	"github.com/charmbracelet/log"
	"tinygo.org/x/bluetooth"
)

var (
	ErrNotConnected     = errors.New("gocube: not connected to device")
	ErrAlreadyConnected = errors.New("gocube: already connected to a device")
	ErrDeviceNotFound   = errors.New("gocube: no device found")
)

var (
	serviceUUID = mustUUID(ServiceUUID)
	txCharUUID  = mustUUID(TxCharUUID)
	rxCharUUID  = mustUUID(RxCharUUID)
)

func mustUUID(s string) bluetooth.UUID {
	raw, err := hex.DecodeString(strings.ReplaceAll(s, "-", ""))
	if err != nil || len(raw) != 16 {
		panic("gocube: bad UUID " + s)
	}
	var b [16]byte
	copy(b[:], raw)
	return bluetooth.NewUUID(b)
}

// Device is a GoCube found by Scan.
type Device struct {
	Name    string
	Address bluetooth.Address
	RSSI    int16
}

// Client is a BLE link to one GoCube.
type Client struct {
	adapter *bluetooth.Adapter
	logger  *log.Logger

	device bluetooth.Device
	rxChar bluetooth.DeviceCharacteristic

	mu        sync.RWMutex
	connected bool
	name      string
	battery   int

	onMoves   func([]nxcube.Move)
	onMessage func(*Message)
}

// NewClient enables the default adapter.
func NewClient(logger *log.Logger) (*Client, error) {
	adapter := bluetooth.DefaultAdapter
	if err := adapter.Enable(); err != nil {
		return nil, fmt.Errorf("failed to enable BLE adapter: %w", err)
	}
	return &Client{adapter: adapter, logger: logger, battery: -1}, nil
}

// OnMoves sets the callback for decoded face turns. It runs on the BLE
// notification goroutine.
func (c *Client) OnMoves(fn func([]nxcube.Move)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMoves = fn
}

// OnMessage sets the callback for every framed message, decoded or not.
func (c *Client) OnMessage(fn func(*Message)) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onMessage = fn
}

// Scan looks for GoCube devices until timeout or ctx is done.
func (c *Client) Scan(ctx context.Context, timeout time.Duration) ([]Device, error) {
	if c.IsConnected() {
		return nil, ErrAlreadyConnected
	}

	var (
		mu      sync.Mutex
		devices []Device
		seen    = map[string]bool{}
		done    = make(chan error, 1)
	)

	go func() {
		done <- c.adapter.Scan(func(_ *bluetooth.Adapter, r bluetooth.ScanResult) {
			name := r.LocalName()
			if !strings.HasPrefix(strings.ToLower(name), "gocube") {
				return
			}

			mu.Lock()
			defer mu.Unlock()
			addr := r.Address.String()
			if seen[addr] {
				return
			}
			seen[addr] = true
			devices = append(devices, Device{Name: name, Address: r.Address, RSSI: r.RSSI})
			c.logger.Debug("found device", "name", name, "addr", addr, "rssi", r.RSSI)
		})
	}()

	select {
	case <-time.After(timeout):
	case <-ctx.Done():
	}
	c.adapter.StopScan()
	if err := <-done; err != nil {
		return nil, fmt.Errorf("scan failed: %w", err)
	}

	mu.Lock()
	defer mu.Unlock()
	return devices, nil
}

// ConnectFirst scans and connects to the first GoCube found.
func (c *Client) ConnectFirst(ctx context.Context, timeout time.Duration) (Device, error) {
	devices, err := c.Scan(ctx, timeout)
	if err != nil {
		return Device{}, err
	}
	if len(devices) == 0 {
		return Device{}, ErrDeviceNotFound
	}
	return devices[0], c.Connect(devices[0])
}

// Connect connects to a device and subscribes to its notifications.
func (c *Client) Connect(d Device) error {
	if c.IsConnected() {
		return ErrAlreadyConnected
	}

	device, err := c.adapter.Connect(d.Address, bluetooth.ConnectionParams{})
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}

	services, err := device.DiscoverServices([]bluetooth.UUID{serviceUUID})
	if err != nil || len(services) == 0 {
		device.Disconnect()
		return fmt.Errorf("GoCube service not found: %v", err)
	}

	chars, err := services[0].DiscoverCharacteristics([]bluetooth.UUID{txCharUUID, rxCharUUID})
	if err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to discover characteristics: %w", err)
	}

	var tx, rx bluetooth.DeviceCharacteristic
	for _, ch := range chars {
		switch ch.UUID() {
		case txCharUUID:
			tx = ch
		case rxCharUUID:
			rx = ch
		}
	}

	if err := tx.EnableNotifications(c.handleNotification); err != nil {
		device.Disconnect()
		return fmt.Errorf("failed to enable notifications: %w", err)
	}

	c.mu.Lock()
	c.device = device
	c.rxChar = rx
	c.connected = true
	c.name = d.Name
	c.mu.Unlock()

	c.logger.Info("connected", "device", d.Name)
	return c.SendCommand(CmdRequestBattery)
}

// Disconnect closes the link. It is a no-op when not connected.
func (c *Client) Disconnect() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.connected {
		return nil
	}
	err := c.device.Disconnect()
	c.connected = false
	c.name = ""
	c.battery = -1
	return err
}

// IsConnected reports whether a device is connected.
func (c *Client) IsConnected() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.connected
}

// Name returns the connected device name.
func (c *Client) Name() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.name
}

// Battery returns the last reported battery level, -1 if unknown.
func (c *Client) Battery() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.battery
}

// SendCommand writes a command to the cube.
func (c *Client) SendCommand(cmd byte) error {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if !c.connected {
		return ErrNotConnected
	}

	data := BuildCommand(cmd)
	if _, err := c.rxChar.WriteWithoutResponse(data); err != nil {
		_, err = c.rxChar.Write(data)
		return err
	}
	return nil
}

// ResetSolved tells the cube its current state is solved.
func (c *Client) ResetSolved() error {
	return c.SendCommand(CmdResetSolved)
}

func (c *Client) handleNotification(data []byte) {
	msg, err := ParseMessage(data)
	if err != nil {
		c.logger.Debug("dropping frame", "err", err, "raw", hex.EncodeToString(data))
		return
	}

	c.mu.RLock()
	onMoves, onMessage := c.onMoves, c.onMessage
	c.mu.RUnlock()

	switch msg.Type {
	case MsgTypeBattery:
		if level, err := DecodeBattery(msg.Payload); err == nil {
			c.mu.Lock()
			c.battery = level
			c.mu.Unlock()
			c.logger.Debug("battery", "level", level)
		}
	case MsgTypeRotation:
		rotations, err := DecodeRotation(msg.Payload)
		if err != nil {
			c.logger.Warn("bad rotation", "err", err)
			break
		}
		if moves := RotationsToMoves(rotations); len(moves) > 0 && onMoves != nil {
			onMoves(moves)
		}
	}

	if onMessage != nil {
		onMessage(msg)
	}
}
