package mocks

import (
	"io"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Exists(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *Client) Occupied(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}

func (m *Client) MkdirAll(path string) error {
	args := m.Called(path)
	return args.Error(0)
}

func (m *Client) Copy(src, dst string) (int64, error) {
	args := m.Called(src, dst)
	return args.Get(0).(int64), args.Error(1)
}

func (m *Client) Symlink(src, dst string) error {
	args := m.Called(src, dst)
	return args.Error(0)
}

func (m *Client) Open(path string) (io.ReadSeekCloser, error) {
	args := m.Called(path)
	if f, ok := args.Get(0).(io.ReadSeekCloser); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) SupportsSymlinks() bool {
	args := m.Called()
	return args.Bool(0)
}
