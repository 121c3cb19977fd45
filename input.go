package ibaqpy

import (
	"compress/bzip2"
	"compress/gzip"
	"compress/zlib"
	"io"
	"os"

	"github.com/carbocation/pfx"
	"github.com/krolaw/zipstream"
	"github.com/xi2/xz"
)

type DataType byte

const (
	DataTypeInvalid DataType = iota
	DataTypeNoCompression
	DataTypeGzip
	DataTypeZip
	DataTypeXZ
	DataTypeZ
	DataTypeBZip2
)

// Byte code signatures from https://stackoverflow.com/a/19127748/199475
var byteCodeSigs = map[DataType][]byte{
	DataTypeGzip:  {0x1f, 0x8b, 0x08},
	DataTypeZip:   {0x50, 0x4b, 0x03, 0x04},
	DataTypeXZ:    {0xfd, 0x37, 0x7a, 0x58, 0x5a, 0x00},
	DataTypeZ:     {0x1f, 0x9d},
	DataTypeBZip2: {0x42, 0x5a, 0x68},
}

// DetectDataType sniffs the leading bytes of a stream and reports which
// known compression container they belong to, if any.
func DetectDataType(r io.Reader) (DataType, error) {
	buff := make([]byte, 6)
	if _, err := io.ReadFull(r, buff); err != nil {
		if err == io.ErrUnexpectedEOF || err == io.EOF {
			// Shorter than any signature; treat as plain data.
			return DataTypeNoCompression, nil
		}
		return DataTypeInvalid, err
	}

Outer:
	for dt, sig := range byteCodeSigs {
		for position := range sig {
			if buff[position] != sig[position] {
				continue Outer
			}
		}
		return dt, nil
	}

	return DataTypeNoCompression, nil
}

// OpenInput opens path for reading. When forceGzip is set the file must be
// gzip data and is decompressed as such, failing otherwise. When unset, the
// file's leading bytes are sniffed and a matching decompressor is applied
// transparently; unrecognized data is passed through as-is. Closing the
// returned ReadCloser closes the underlying file.
func OpenInput(path string, forceGzip bool) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pfx.Err(err)
	}

	if forceGzip {
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &inputFile{r: gz, f: f}, nil
	}

	dt, err := DetectDataType(f)
	if err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		f.Close()
		return nil, pfx.Err(err)
	}

	switch dt {
	case DataTypeGzip:
		gz, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &inputFile{r: gz, f: f}, nil
	case DataTypeZip:
		return &inputFile{r: zipstream.NewReader(f), f: f}, nil
	case DataTypeBZip2:
		return &inputFile{r: bzip2.NewReader(f), f: f}, nil
	case DataTypeXZ:
		reader, err := xz.NewReader(f, 0)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &inputFile{r: reader, f: f}, nil
	case DataTypeZ:
		zr, err := zlib.NewReader(f)
		if err != nil {
			f.Close()
			return nil, pfx.Err(err)
		}
		return &inputFile{r: zr, f: f}, nil
	}

	return f, nil
}

// inputFile pairs a decompressing reader with the file it wraps so that a
// single Close releases both.
type inputFile struct {
	r io.Reader
	f *os.File
}

func (in *inputFile) Read(p []byte) (int, error) {
	return in.r.Read(p)
}

func (in *inputFile) Close() error {
	if c, ok := in.r.(io.Closer); ok {
		c.Close()
	}
	return in.f.Close()
}
