package smf

import (
	"encoding/binary"
	"fmt"
	"io"
)

// add offset
func (d *Decoder) readByte() (byte, error) {
	var b byte
	err := binary.Read(d.r, binary.BigEndian, &b)
	if err == nil {
		d.offset += 1 // read byte
	}
	return b, err
}

// VarLen returns the variable length value at the exact parser location.
func (d *Decoder) varLen() (val uint32, err error) {
	buf := make([]byte, 0, maxVarintLen)
	var lastByte bool

	for !lastByte {
		if len(buf) == maxVarintLen {
			return 0, fmt.Errorf("%w - variable length quantity longer than %d bytes at offset %d",
				ErrUnexpectedData, maxVarintLen, d.offset)
		}
		b, err := d.readByte()
		if err != nil {
			return 0, err
		}
		buf = append(buf, b)
		lastByte = b>>7 == 0x0
	}

	val, _ = decodeVarint(buf)
	return val, nil
}

// varLenTxt skips a length-prefixed block.
func (d *Decoder) varLenTxt() error {
	l, err := d.varLen()
	if err != nil {
		return noEOF(err)
	}
	return d.skip(int64(l))
}

// varLenData reads a length-prefixed block that must fit in the current track.
func (d *Decoder) varLenData() ([]byte, error) {
	l, err := d.varLen()
	if err != nil {
		return nil, noEOF(err)
	}
	if int64(l) > d.trackEnd-d.offset {
		return nil, fmt.Errorf("%w - block of %d bytes at offset %d overruns track end %d",
			ErrUnexpectedData, l, d.offset, d.trackEnd)
	}

	buf := make([]byte, l)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return nil, noEOF(err)
	}
	d.offset += int64(l)

	return buf, nil
}

func (d *Decoder) skip(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w - offset %d is past track end %d", ErrUnexpectedData, d.offset, d.trackEnd)
	}
	if _, err := d.r.Seek(n, io.SeekCurrent); err != nil {
		return err
	}
	d.offset += n
	return nil
}

func (d *Decoder) IDnSize() ([4]byte, uint32, error) {
	var ID [4]byte
	if err := binary.Read(d.r, binary.BigEndian, &ID); err != nil {
		return ID, 0, err
	}
	d.offset += 4 // [4]byte ID

	var size uint32
	if err := binary.Read(d.r, binary.BigEndian, &size); err != nil {
		return ID, 0, noEOF(err)
	}
	d.offset += 4 // uint32 blockSize

	return ID, size, nil
}

// noEOF turns io.EOF into io.ErrUnexpectedEOF. Only a chunk boundary may end the file.
func noEOF(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
