/*
 * MIT License
 *
 * Copyright (c) 2026 Nguyen Thanh Phuong
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

// Package sampler performs the per-tick refresh of raw OS metrics. One
// Sample() call reads CPU, memory, host, process and network-interface
// counters and returns them as plain values for the assembler.
//
// A failed read of any individual metric degrades to its zero value and a
// warning log entry; it never aborts the tick.
package sampler

import (
	"log/slog"
	"strings"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/host"
	"github.com/shirou/gopsutil/v3/load"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/net"
	"github.com/shirou/gopsutil/v3/process"
)

// Dependency injection points for testing.
var (
	cpuPercent    = cpu.Percent
	cpuInfo       = cpu.Info
	cpuCounts     = cpu.Counts
	loadAvg       = load.Avg
	virtualMemory = mem.VirtualMemory
	swapMemory    = mem.SwapMemory
	hostInfo      = host.Info
	netIOCounters = net.IOCounters
	netInterfaces = net.Interfaces
	readProcesses = readProcessTable
)

// Sampler drives one refresh cycle per tick against the OS-info provider.
// It keeps no history; it is a pull-based refresh and read.
type Sampler struct {
	includeInterfaces []string // Interfaces to monitor (empty = all)
	excludeInterfaces []string // Interfaces to exclude
	logger            *slog.Logger
}

// NewSampler creates a sampler with optional interface filters.
func NewSampler(includeInterfaces, excludeInterfaces []string, logger *slog.Logger) *Sampler {
	return &Sampler{
		includeInterfaces: includeInterfaces,
		excludeInterfaces: excludeInterfaces,
		logger:            logger,
	}
}

// Sample performs a full refresh and returns the raw per-tick values.
func (s *Sampler) Sample() *Sample {
	sample := &Sample{
		Timestamp: time.Now(),
		Addresses: make(map[string][]Address),
	}

	s.readCPU(&sample.CPU)
	s.readMemory(&sample.Memory)
	s.readHost(&sample.Host)
	s.readNetwork(sample)

	procs, err := readProcesses()
	if err != nil {
		s.logger.Warn("Failed to enumerate processes", "error", err)
	} else {
		sample.Processes = procs
	}

	return sample
}

func (s *Sampler) readCPU(out *CPUStat) {
	if global, err := cpuPercent(0, false); err != nil {
		s.logger.Warn("Failed to read global CPU usage", "error", err)
	} else if len(global) > 0 {
		out.Global = global[0]
	}

	if perCore, err := cpuPercent(0, true); err != nil {
		s.logger.Warn("Failed to read per-core CPU usage", "error", err)
	} else {
		out.PerCore = perCore
	}

	if infos, err := cpuInfo(); err != nil {
		s.logger.Warn("Failed to read CPU info", "error", err)
	} else if len(infos) > 0 {
		out.Brand = infos[0].ModelName
		out.Mhz = infos[0].Mhz
	}

	if physical, err := cpuCounts(false); err != nil {
		s.logger.Warn("Failed to count physical cores", "error", err)
	} else {
		out.PhysicalCores = physical
	}

	if logical, err := cpuCounts(true); err != nil {
		s.logger.Warn("Failed to count logical cores", "error", err)
	} else {
		out.LogicalCores = logical
	}

	if avg, err := loadAvg(); err != nil {
		s.logger.Warn("Failed to read load average", "error", err)
	} else {
		out.LoadAvg1 = avg.Load1
	}
}

func (s *Sampler) readMemory(out *MemoryStat) {
	if vm, err := virtualMemory(); err != nil {
		s.logger.Warn("Failed to read memory stats", "error", err)
	} else {
		out.Total = vm.Total
		out.Used = vm.Used
	}

	if swap, err := swapMemory(); err != nil {
		s.logger.Warn("Failed to read swap stats", "error", err)
	} else {
		out.SwapTotal = swap.Total
		out.SwapUsed = swap.Used
	}
}

func (s *Sampler) readHost(out *HostStat) {
	info, err := hostInfo()
	if err != nil {
		s.logger.Warn("Failed to read host info", "error", err)
		return
	}

	out.Hostname = info.Hostname
	out.OS = info.Platform
	if out.OS == "" {
		out.OS = info.OS
	}
	out.KernelVersion = info.KernelVersion
	out.Uptime = info.Uptime
	out.BootTime = info.BootTime
}

// readNetwork reads per-interface cumulative counters plus the resolved IP
// addresses from the separate address enumeration source, applying the
// include/exclude filters to both.
func (s *Sampler) readNetwork(sample *Sample) {
	counters, err := netIOCounters(true)
	if err != nil {
		s.logger.Warn("Failed to read network I/O counters", "error", err)
		return
	}

	ifaces, err := netInterfaces()
	if err != nil {
		s.logger.Warn("Failed to enumerate network interfaces", "error", err)
		// Counters remain usable without MAC/address resolution.
	}

	macByName := make(map[string]string, len(ifaces))
	for _, iface := range ifaces {
		macByName[iface.Name] = iface.HardwareAddr
		if !s.shouldMonitor(iface.Name) {
			continue
		}
		for _, addr := range iface.Addrs {
			sample.Addresses[iface.Name] = append(sample.Addresses[iface.Name], parseAddress(addr.Addr))
		}
	}

	for _, counter := range counters {
		if !s.shouldMonitor(counter.Name) {
			continue
		}

		sample.Interfaces = append(sample.Interfaces, InterfaceStat{
			Name:      counter.Name,
			MAC:       macByName[counter.Name],
			BytesRecv: counter.BytesRecv,
			BytesSent: counter.BytesSent,
		})
		sample.TotalRecv += counter.BytesRecv
		sample.TotalSent += counter.BytesSent
	}
}

// shouldMonitor checks if an interface passes the include/exclude filters.
// Exclude takes priority; an empty include list means monitor all.
func (s *Sampler) shouldMonitor(interfaceName string) bool {
	for _, excluded := range s.excludeInterfaces {
		if excluded == interfaceName {
			return false
		}
	}

	if len(s.includeInterfaces) == 0 {
		return true
	}

	for _, included := range s.includeInterfaces {
		if included == interfaceName {
			return true
		}
	}

	return false
}

// parseAddress classifies an interface address string by family. The
// enumeration source reports addresses in CIDR notation ("192.168.1.5/24",
// "fe80::1/64"); the prefix length is stripped for display.
func parseAddress(addr string) Address {
	ip := addr
	if idx := strings.IndexByte(ip, '/'); idx != -1 {
		ip = ip[:idx]
	}

	family := FamilyIPv4
	if strings.Contains(ip, ":") {
		family = FamilyIPv6
	}

	return Address{Family: family, IP: ip}
}

// readProcessTable enumerates all processes with name, CPU and resident
// memory. Rows whose fields cannot be read individually degrade to zero
// values rather than dropping the row.
func readProcessTable() ([]ProcessStat, error) {
	procs, err := process.Processes()
	if err != nil {
		return nil, err
	}

	rows := make([]ProcessStat, 0, len(procs))
	for _, p := range procs {
		row := ProcessStat{PID: p.Pid}

		if name, err := p.Name(); err == nil {
			row.Name = name
		} else {
			row.Name = "unknown"
		}

		if pct, err := p.CPUPercent(); err == nil {
			row.CPUPercent = pct
		}

		if info, err := p.MemoryInfo(); err == nil && info != nil {
			row.MemoryBytes = info.RSS
		}

		rows = append(rows, row)
	}

	return rows, nil
}
