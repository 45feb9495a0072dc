package flagvalue

import (
	"flag"
	"io"
	"os"

	"braces.dev/errtrace"
)

// _fallback is the value of a FileSwitch
// that was passed without a file name.
const _fallback = "-"

// FileSwitch is a flag that accepts both "-x" and "-x=FILE".
// treepaint uses it for -debug:
// with no value, output goes to a fallback writer (stderr);
// with a value, it goes to that file.
type FileSwitch string

var _ flag.Getter = (*FileSwitch)(nil)

// Get returns the file name,
// "-" if the flag was passed without one,
// or "" if it wasn't passed.
func (fs *FileSwitch) Get() any { return string(*fs) }

// String returns the same value as Get.
func (fs *FileSwitch) String() string {
	return string(*fs)
}

// IsBoolFlag allows the flag to be passed without a value.
func (*FileSwitch) IsBoolFlag() bool {
	return true
}

// Set receives the value for this flag.
// "true" is what the flag package passes for a bare "-x".
func (fs *FileSwitch) Set(v string) error {
	switch v {
	case "true":
		v = _fallback
	case "false":
		v = ""
	}
	*fs = FileSwitch(v)
	return nil
}

// Bool reports whether this flag was set with any value.
func (fs *FileSwitch) Bool() bool {
	return len(*fs) > 0
}

// Create opens the destination for this flag.
// The returned close function must be called when done.
//
//   - not passed: writes are discarded
//   - passed without a value: writes go to fallback, which is not closed
//   - passed with a file name: the file is created and closed by close
func (fs *FileSwitch) Create(fallback io.Writer) (w io.Writer, close func() error, err error) {
	switch path := string(*fs); path {
	case "":
		return io.Discard, nopClose, nil
	case _fallback:
		return fallback, nopClose, nil
	default:
		f, err := os.Create(path)
		if err != nil {
			return nil, nil, errtrace.Wrap(err)
		}
		return f, f.Close, nil
	}
}

func nopClose() error { return nil }
