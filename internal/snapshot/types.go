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

package snapshot

import (
	"time"

	"github.com/phuonguno98/unodash/pkg/metrics"
)

// Field is a display value that may be unavailable on the current platform
// (GPU model, cache sizes, page-fault counters). Unavailability is carried
// as an explicit flag rather than a sentinel string so every presentation
// layer can pick its own placeholder glyph.
type Field struct {
	Value     string `json:"value"`
	Available bool   `json:"available"`
}

// NewField creates an available field.
func NewField(value string) Field {
	return Field{Value: value, Available: true}
}

// Unavailable is the zero, not-available field.
var Unavailable = Field{}

// String returns the value, or "N/A" when unavailable.
func (f Field) String() string {
	if !f.Available {
		return "N/A"
	}
	return f.Value
}

// Gauge is a bounded current-value display (dials on the home view).
type Gauge struct {
	Lower   float64 `json:"lower"`
	Upper   float64 `json:"upper"`
	Current float64 `json:"current"`
}

// Chart is a history series with a precomputed y-axis maximum. Max is never
// below 1 so an all-zero series still renders with a visible scale.
type Chart struct {
	Max    float64   `json:"max"`
	Points []float64 `json:"points"`
}

// HomeView is the landing page aggregate: four gauges, two static info
// panels and the CPU history chart.
type HomeView struct {
	CPU     Gauge `json:"cpu"`
	Memory  Gauge `json:"memory"`
	Disk    Gauge `json:"disk"`
	Network Gauge `json:"network"`

	LeftPanel  HomeLeftPanel  `json:"left_panel"`
	RightPanel HomeRightPanel `json:"right_panel"`

	CPUHistory []float64 `json:"cpu_history"`
}

// HomeLeftPanel holds static hardware and OS identity.
type HomeLeftPanel struct {
	Hostname    Field `json:"hostname"`
	OS          Field `json:"os"`
	Kernel      Field `json:"kernel"`
	CPUName     Field `json:"cpu_name"`
	GPUModel    Field `json:"gpu_model"`
	TotalRAM    Field `json:"total_ram"`
	Motherboard Field `json:"motherboard"`
}

// HomeRightPanel holds runtime host state.
type HomeRightPanel struct {
	Uptime       Field `json:"uptime"`
	BootTime     Field `json:"boot_time"`
	ProcessCount Field `json:"process_count"`
	LocalIP      Field `json:"local_ip"`
}

// CPUView is the CPU page aggregate.
type CPUView struct {
	TotalConsumption float64 `json:"total_consumption"`

	ClockSpeed    Field `json:"clock_speed"`
	CoreTemp      Field `json:"core_temp"`
	LoadAvg       Field `json:"load_avg"`
	BaseFrequency Field `json:"base_frequency"`
	ThreadsUsed   Field `json:"threads_used"`

	Model        Field `json:"model"`
	Cores        Field `json:"cores"`
	Threads      Field `json:"threads"`
	Architecture Field `json:"architecture"`
	CacheL1      Field `json:"cache_l1"`
	CacheL2      Field `json:"cache_l2"`
	CacheL3      Field `json:"cache_l3"`

	Usage     Chart     `json:"usage"`
	CoreUsage []float64 `json:"core_usage"`
}

// MemoryView is the memory page aggregate.
type MemoryView struct {
	UsedPercent float64 `json:"used_percent"`

	Physical PhysicalMemoryPanel `json:"physical"`
	Virtual  VirtualMemoryPanel  `json:"virtual"`
	Page     PagePanel           `json:"page"`

	Usage Chart `json:"usage"`
}

// PhysicalMemoryPanel describes installed RAM.
type PhysicalMemoryPanel struct {
	Installed  Field `json:"installed"`
	InUse      Field `json:"in_use"`
	Available  Field `json:"available"`
	Compressed Field `json:"compressed"`
	Reserved   Field `json:"reserved"`
}

// VirtualMemoryPanel describes swap/commit state.
type VirtualMemoryPanel struct {
	CommitCharge  Field `json:"commit_charge"`
	CommitLimit   Field `json:"commit_limit"`
	CommitPercent Field `json:"commit_percent"`
	PagedPool     Field `json:"paged_pool"`
	NonPagedPool  Field `json:"non_paged_pool"`
}

// PagePanel holds paging counters, unavailable on every current platform.
type PagePanel struct {
	PageFaults   Field `json:"page_faults"`
	HardFaults   Field `json:"hard_faults"`
	CacheStandby Field `json:"cache_standby"`
	Modified     Field `json:"modified"`
}

// NetworkView is the network page aggregate.
type NetworkView struct {
	Current metrics.NetworkSample `json:"current"`

	Upload   Chart `json:"upload"`
	Download Chart `json:"download"`

	Active ActiveInterface `json:"active"`
	Stats  NetworkStats    `json:"stats"`

	Interfaces []InterfaceRow `json:"interfaces"`
}

// ActiveInterface identifies the interface selected for "current" display:
// the first enumerated interface with nonzero cumulative traffic.
type ActiveInterface struct {
	Name Field `json:"name"`
	IPv4 Field `json:"ipv4"`
	IPv6 Field `json:"ipv6"`
	MAC  Field `json:"mac"`
}

// NetworkStats aggregates traffic across all monitored interfaces.
type NetworkStats struct {
	TotalSent      uint64 `json:"total_sent"`
	TotalReceived  uint64 `json:"total_received"`
	InterfaceCount int    `json:"interface_count"`
	LinkStatus     string `json:"link_status"`
}

// InterfaceRow is one formatted row of the per-interface table. Cells are
// display strings; absent addresses use the "—" placeholder.
type InterfaceRow struct {
	Name     string `json:"name"`
	IPv4     string `json:"ipv4"`
	IPv6     string `json:"ipv6"`
	MAC      string `json:"mac"`
	Sent     string `json:"sent"`
	Received string `json:"received"`
}

// ProcessRow is one formatted row of the process table.
type ProcessRow struct {
	PID    int32  `json:"pid"`
	Name   string `json:"name"`
	CPU    string `json:"cpu"`
	Memory string `json:"memory"`
}

// Snapshot is the immutable per-tick aggregate handed to the presentation
// layer. It is rebuilt from scratch every tick and never mutated afterwards.
type Snapshot struct {
	Timestamp time.Time    `json:"timestamp"`
	Home      HomeView     `json:"home"`
	CPU       CPUView      `json:"cpu"`
	Memory    MemoryView   `json:"memory"`
	Network   NetworkView  `json:"network"`
	Processes []ProcessRow `json:"processes"`
}
