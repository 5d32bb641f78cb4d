package wallpaper

import "github.com/stretchr/testify/mock"

// MockOS is a mock implementation of the OS interface.
type MockOS struct {
	mock.Mock
	applied []string
}

func (m *MockOS) SetWallpaper(path string) error {
	m.applied = append(m.applied, path)
	args := m.Called(path)
	return args.Error(0)
}

func newMockOS() *MockOS {
	m := &MockOS{}
	m.On("SetWallpaper", mock.Anything).Return(nil)
	return m
}
