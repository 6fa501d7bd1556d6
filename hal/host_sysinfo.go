//go:build !tinygo

package hal

import (
	"runtime"

	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/mem"
)

type hostSystemInfo struct {
	platform string
}

func newHostSystemInfo() *hostSystemInfo {
	platform := runtime.GOOS + "/" + runtime.GOARCH
	if info, err := host.Info(); err == nil && info.Platform != "" {
		platform = info.Platform + "/" + info.KernelArch
	}
	return &hostSystemInfo{platform: platform}
}

func (i *hostSystemInfo) Platform() string { return i.platform }

func (i *hostSystemInfo) FreeMemory() uint64 {
	vm, err := mem.VirtualMemory()
	if err != nil {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return ms.HeapIdle
	}
	return vm.Available
}
