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

// Package snapshot assembles raw sampler output and the rolling history
// windows into immutable, display-ready view records.
package snapshot

import (
	"fmt"
	"runtime"
	"sort"
	"time"

	"github.com/phuonguno98/unodash/internal/history"
	"github.com/phuonguno98/unodash/internal/sampler"
	"github.com/phuonguno98/unodash/pkg/metrics"
)

// placeholderCell is the table-cell glyph for an absent value.
const placeholderCell = "—"

// Assemble builds the full per-tick snapshot from the raw sample and the
// current history windows. It is a pure function of its inputs.
func Assemble(sample *sampler.Sample, hist *history.SystemHistory) *Snapshot {
	return &Snapshot{
		Timestamp: sample.Timestamp,
		Home:      BuildHome(sample, hist.CPU()),
		CPU:       BuildCPU(sample, hist.CPU()),
		Memory:    BuildMemory(sample, hist.Memory()),
		Network:   BuildNetwork(sample, hist.Network()),
		Processes: BuildProcessTable(sample.Processes),
	}
}

// BuildHome assembles the landing page view. Disk and network gauges are
// explicit placeholders: the OS-info provider does not expose a meaningful
// single percentage for either.
func BuildHome(sample *sampler.Sample, cpuHist []float64) HomeView {
	view := HomeView{
		CPU:     Gauge{Lower: 0, Upper: 100, Current: sample.CPU.Global},
		Memory:  Gauge{Lower: 0, Upper: metrics.BytesToGiB(sample.Memory.Total), Current: metrics.BytesToGiB(sample.Memory.Used)},
		Disk:    Gauge{Lower: 0, Upper: 100, Current: 0},
		Network: Gauge{Lower: 0, Upper: 100, Current: 0},

		CPUHistory: cpuHist,
	}

	view.LeftPanel = HomeLeftPanel{
		Hostname:    fieldOr(sample.Host.Hostname),
		OS:          fieldOr(sample.Host.OS),
		Kernel:      fieldOr(sample.Host.KernelVersion),
		CPUName:     fieldOr(sample.CPU.Brand),
		GPUModel:    Unavailable,
		TotalRAM:    NewField(fmt.Sprintf("%.1f GB", float64(sample.Memory.Total)/1e9)),
		Motherboard: Unavailable,
	}

	view.RightPanel = HomeRightPanel{
		Uptime:       NewField(fmt.Sprintf("%dh", sample.Host.Uptime/3600)),
		BootTime:     bootTimeField(sample.Host.BootTime),
		ProcessCount: NewField(fmt.Sprintf("%d", len(sample.Processes))),
		LocalIP:      NewField(localIP(sample)),
	}

	return view
}

// BuildCPU assembles the CPU page view.
func BuildCPU(sample *sampler.Sample, cpuHist []float64) CPUView {
	return CPUView{
		TotalConsumption: sample.CPU.Global,

		ClockSpeed:    mhzField(sample.CPU.Mhz),
		CoreTemp:      Unavailable,
		LoadAvg:       NewField(fmt.Sprintf("%.2f", sample.CPU.LoadAvg1)),
		BaseFrequency: Unavailable,
		ThreadsUsed:   NewField(fmt.Sprintf("%d", len(sample.Processes))),

		Model:        fieldOr(sample.CPU.Brand),
		Cores:        NewField(fmt.Sprintf("%d", sample.CPU.PhysicalCores)),
		Threads:      NewField(fmt.Sprintf("%d", sample.CPU.LogicalCores)),
		Architecture: NewField(runtime.GOARCH),
		CacheL1:      Unavailable,
		CacheL2:      Unavailable,
		CacheL3:      Unavailable,

		Usage:     Chart{Max: metrics.SeriesMax(cpuHist), Points: cpuHist},
		CoreUsage: sample.CPU.PerCore,
	}
}

// BuildMemory assembles the memory page view.
func BuildMemory(sample *sampler.Sample, memHist []float64) MemoryView {
	total := sample.Memory.Total
	used := sample.Memory.Used

	return MemoryView{
		UsedPercent: metrics.CalculateUsagePercent(used, total),

		Physical: PhysicalMemoryPanel{
			Installed:  gbField(total),
			InUse:      gbField(used),
			Available:  gbField(total - min(used, total)),
			Compressed: Unavailable,
			Reserved:   Unavailable,
		},
		Virtual: VirtualMemoryPanel{
			CommitCharge:  gbField(sample.Memory.SwapUsed),
			CommitLimit:   gbField(sample.Memory.SwapTotal),
			CommitPercent: Unavailable,
			PagedPool:     Unavailable,
			NonPagedPool:  Unavailable,
		},
		Page: PagePanel{
			PageFaults:   Unavailable,
			HardFaults:   Unavailable,
			CacheStandby: Unavailable,
			Modified:     Unavailable,
		},

		Usage: Chart{Max: metrics.SeriesMax(memHist), Points: memHist},
	}
}

// BuildNetwork assembles the network page view.
func BuildNetwork(sample *sampler.Sample, netHist []metrics.NetworkSample) NetworkView {
	upload := make([]float64, len(netHist))
	download := make([]float64, len(netHist))
	for i, s := range netHist {
		upload[i] = s.Upload
		download[i] = s.Download
	}

	var current metrics.NetworkSample
	if len(netHist) > 0 {
		current = netHist[len(netHist)-1]
	}

	view := NetworkView{
		Current:  current,
		Upload:   Chart{Max: metrics.SeriesMax(upload), Points: upload},
		Download: Chart{Max: metrics.SeriesMax(download), Points: download},
		Stats: NetworkStats{
			TotalSent:      sample.TotalSent,
			TotalReceived:  sample.TotalRecv,
			InterfaceCount: len(sample.Interfaces),
			LinkStatus:     "Active",
		},
		Active: ActiveInterface{
			Name: Unavailable,
			IPv4: Unavailable,
			IPv6: Unavailable,
			MAC:  Unavailable,
		},
	}

	if active, ok := activeInterface(sample); ok {
		ipv4, ipv6 := resolveAddresses(sample.Addresses[active.Name])
		view.Active = ActiveInterface{
			Name: NewField(active.Name),
			IPv4: fieldOr(ipv4),
			IPv6: fieldOr(ipv6),
			MAC:  fieldOr(active.MAC),
		}
	}

	view.Interfaces = buildInterfaceTable(sample)

	return view
}

// buildInterfaceTable builds one row per enumerated interface, independent
// of the active-interface selection.
func buildInterfaceTable(sample *sampler.Sample) []InterfaceRow {
	rows := make([]InterfaceRow, 0, len(sample.Interfaces))
	for _, iface := range sample.Interfaces {
		ipv4, ipv6 := resolveAddresses(sample.Addresses[iface.Name])
		rows = append(rows, InterfaceRow{
			Name:     iface.Name,
			IPv4:     cellOr(ipv4),
			IPv6:     cellOr(ipv6),
			MAC:      cellOr(iface.MAC),
			Sent:     fmt.Sprintf("%.2f MB", float64(iface.BytesSent)/metrics.BytesPerMiB),
			Received: fmt.Sprintf("%.2f MB", float64(iface.BytesRecv)/metrics.BytesPerMiB),
		})
	}
	return rows
}

// BuildProcessTable formats the process table, sorted by PID for a stable
// row order across ticks.
func BuildProcessTable(procs []sampler.ProcessStat) []ProcessRow {
	sorted := make([]sampler.ProcessStat, len(procs))
	copy(sorted, procs)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].PID < sorted[j].PID })

	rows := make([]ProcessRow, 0, len(sorted))
	for _, p := range sorted {
		rows = append(rows, ProcessRow{
			PID:    p.PID,
			Name:   p.Name,
			CPU:    fmt.Sprintf("%.1f%%", p.CPUPercent),
			Memory: fmt.Sprintf("%.1f MB", float64(p.MemoryBytes)/metrics.BytesPerMiB),
		})
	}
	return rows
}

// activeInterface selects the first enumerated interface with nonzero
// cumulative traffic.
func activeInterface(sample *sampler.Sample) (sampler.InterfaceStat, bool) {
	for _, iface := range sample.Interfaces {
		if iface.BytesSent > 0 || iface.BytesRecv > 0 {
			return iface, true
		}
	}
	return sampler.InterfaceStat{}, false
}

// resolveAddresses picks one address per family from an interface's
// enumeration. The first match per family wins; duplicates are ignored so
// the result does not depend on enumeration tail order.
func resolveAddresses(addrs []sampler.Address) (ipv4, ipv6 string) {
	for _, addr := range addrs {
		switch addr.Family {
		case sampler.FamilyIPv4:
			if ipv4 == "" {
				ipv4 = addr.IP
			}
		case sampler.FamilyIPv6:
			if ipv6 == "" {
				ipv6 = addr.IP
			}
		}
	}
	return ipv4, ipv6
}

// localIP returns the active interface's IPv4 address, falling back to the
// loopback address when no interface carries traffic.
func localIP(sample *sampler.Sample) string {
	if active, ok := activeInterface(sample); ok {
		if ipv4, _ := resolveAddresses(sample.Addresses[active.Name]); ipv4 != "" {
			return ipv4
		}
	}
	return "127.0.0.1"
}

func bootTimeField(bootUnix uint64) Field {
	if bootUnix == 0 {
		return Unavailable
	}
	return NewField(time.Unix(int64(bootUnix), 0).Format("2006-01-02 15:04:05"))
}

func mhzField(mhz float64) Field {
	if mhz <= 0 {
		return Unavailable
	}
	return NewField(fmt.Sprintf("%.0f MHz", mhz))
}

func gbField(b uint64) Field {
	return NewField(fmt.Sprintf("%.1f GB", float64(b)/1e9))
}

// fieldOr wraps a string that may be missing from the provider.
func fieldOr(s string) Field {
	if s == "" {
		return Unavailable
	}
	return NewField(s)
}

// cellOr formats a possibly-absent value as a table cell.
func cellOr(s string) string {
	if s == "" {
		return placeholderCell
	}
	return s
}
