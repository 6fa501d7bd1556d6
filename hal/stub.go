package hal

// nullSerial is the serial port on targets without one: no input, output discarded.
type nullSerial struct{}

func (nullSerial) Buffered() int { return 0 }

func (nullSerial) ReadByte() (byte, error) { return 0, ErrNoData }

func (nullSerial) Write(p []byte) (int, error) {
	return len(p), nil
}
