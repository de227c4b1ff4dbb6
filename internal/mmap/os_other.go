//go:build !unix && !windows

package mmap

func osMapAnon(int) ([]byte, func([]byte) error, error) {
	return nil, nil, ErrUnsupported
}

func osAdvise([]byte, AccessPattern) error { return nil }
