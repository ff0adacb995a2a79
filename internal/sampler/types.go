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

package sampler

import "time"

// Sample holds the raw per-tick values read from the OS. It carries no
// history; the scheduler feeds the relevant fields into the rolling windows
// and hands the rest to the snapshot assembler.
type Sample struct {
	Timestamp time.Time

	CPU       CPUStat
	Memory    MemoryStat
	Host      HostStat
	Processes []ProcessStat

	// Interfaces lists the monitored network interfaces in the provider's
	// enumeration order together with their cumulative byte counters.
	Interfaces []InterfaceStat

	// TotalRecv and TotalSent aggregate the cumulative counters across all
	// monitored interfaces. These feed the rate counter.
	TotalRecv uint64
	TotalSent uint64

	// Addresses maps interface name to its resolved IP addresses.
	Addresses map[string][]Address
}

// CPUStat holds global and per-core CPU readings.
type CPUStat struct {
	Global        float64   // 0-100
	PerCore       []float64 // 0-100 each
	Brand         string    // e.g. "Intel(R) Core(TM) i7-9750H"
	Mhz           float64
	PhysicalCores int
	LogicalCores  int
	LoadAvg1      float64
}

// MemoryStat holds physical and swap memory readings in bytes.
type MemoryStat struct {
	Total     uint64
	Used      uint64
	SwapTotal uint64
	SwapUsed  uint64
}

// HostStat holds static host identity fields.
type HostStat struct {
	Hostname      string
	OS            string
	KernelVersion string
	Uptime        uint64 // seconds
	BootTime      uint64 // unix seconds
}

// ProcessStat is one row of the raw process table.
type ProcessStat struct {
	PID         int32
	Name        string
	CPUPercent  float64
	MemoryBytes uint64
}

// InterfaceStat holds per-interface cumulative traffic counters.
type InterfaceStat struct {
	Name      string
	MAC       string
	BytesRecv uint64
	BytesSent uint64
}

// Address families resolved from the address enumeration source.
const (
	FamilyIPv4 = "ipv4"
	FamilyIPv6 = "ipv6"
)

// Address is one resolved IP address of an interface.
type Address struct {
	Family string
	IP     string
}
