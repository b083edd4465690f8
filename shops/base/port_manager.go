package base

import (
	"fmt"
	"sync"
)

// PortManager hands out ChromeDriver ports so concurrent searches don't
// collide on the same driver instance.
type PortManager struct {
	basePort  int
	portRange int
	portMap   map[int]bool
	mutex     sync.Mutex
}

var (
	GlobalPortManager *PortManager
	once              sync.Once
)

// InitPortManager initializes the global port manager
func InitPortManager(basePort, portRange int) {
	once.Do(func() {
		GlobalPortManager = NewPortManager(basePort, portRange)
	})
}

// NewPortManager creates a new port manager with the specified base port and range
func NewPortManager(basePort, portRange int) *PortManager {
	portMap := make(map[int]bool)
	for i := 0; i < portRange; i++ {
		portMap[basePort+i] = false
	}

	return &PortManager{
		basePort:  basePort,
		portRange: portRange,
		portMap:   portMap,
	}
}

// GetPort allocates an available port
func (pm *PortManager) GetPort() (int, error) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	for i := 0; i < pm.portRange; i++ {
		port := pm.basePort + i
		if !pm.portMap[port] {
			pm.portMap[port] = true
			return port, nil
		}
	}

	return 0, fmt.Errorf("no available ports in range %d-%d", pm.basePort, pm.basePort+pm.portRange-1)
}

// ReleasePort returns a port to the pool
func (pm *PortManager) ReleasePort(port int) {
	pm.mutex.Lock()
	defer pm.mutex.Unlock()

	pm.portMap[port] = false
}
