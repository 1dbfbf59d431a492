package transport

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

type fakeSPIPort struct {
	name   string
	freq   physic.Frequency
	mode   spi.Mode
	writes [][]byte
	closed bool
}

func (p *fakeSPIPort) String() string                     { return p.name }
func (p *fakeSPIPort) LimitSpeed(f physic.Frequency) error { return nil }
func (p *fakeSPIPort) Close() error {
	p.closed = true
	return nil
}

func (p *fakeSPIPort) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	p.freq = f
	p.mode = mode
	return &fakeSPIConn{port: p}, nil
}

type fakeSPIConn struct {
	port *fakeSPIPort
}

func (c *fakeSPIConn) String() string      { return c.port.name }
func (c *fakeSPIConn) Duplex() conn.Duplex { return conn.Half }
func (c *fakeSPIConn) Tx(w, r []byte) error {
	c.port.writes = append(c.port.writes, append([]byte(nil), w...))
	return nil
}
func (c *fakeSPIConn) TxPackets(p []spi.Packet) error { return errors.New("not supported") }

func TestEncodeNRZ(t *testing.T) {
	got := EncodeNRZ(nil, []byte{0xFF, 0x00, 0xA5})
	want := []byte{
		0xDB, 0x6D, 0xB6, // 11111111 -> 110 x8
		0x92, 0x49, 0x24, // 00000000 -> 100 x8
		0xD3, 0x49, 0xA6, // 10100101
	}
	if !bytes.Equal(got[:9], want) {
		t.Errorf("EncodeNRZ() = % x, want % x", got[:9], want)
	}
	if len(got) != 9+resetBytes {
		t.Errorf("len(EncodeNRZ()) = %d, want %d", len(got), 9+resetBytes)
	}
	for _, b := range got[9:] {
		if b != 0 {
			t.Fatal("reset gap is not all zero")
		}
	}
}

func TestSPISend(t *testing.T) {
	ports := map[string]*fakeSPIPort{}
	s := newSPI(func(name string) (spi.PortCloser, error) {
		if name == "missing" {
			return nil, errors.New("no such port")
		}
		p := &fakeSPIPort{name: name}
		ports[name] = p
		return p, nil
	}, nil)

	frame := []byte{0x00, 0xFF, 0x00}
	for i := 0; i < 2; i++ {
		if err := s.Send(frame, "SPI0.0"); err != nil {
			t.Fatalf("Send() error = %v", err)
		}
	}
	if len(ports) != 1 {
		t.Fatalf("opened %d ports, want 1", len(ports))
	}
	p := ports["SPI0.0"]
	if p.freq != SPIFrequency || p.mode != spi.Mode0 {
		t.Errorf("Connect() freq = %v mode = %v", p.freq, p.mode)
	}
	if len(p.writes) != 2 || !bytes.Equal(p.writes[1], EncodeNRZ(nil, frame)) {
		t.Errorf("port writes = %d, last = % x", len(p.writes), p.writes[len(p.writes)-1])
	}

	if err := s.Send(frame, "missing"); err == nil {
		t.Error("Send() to a missing port did not return error")
	}

	if err := s.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !p.closed {
		t.Error("Close() did not close the port")
	}
	if err := s.Send(frame, "SPI0.0"); !errors.Is(err, ErrClosed) {
		t.Errorf("Send() after Close() error = %v, want %v", err, ErrClosed)
	}
}
