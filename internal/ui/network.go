package ui

import (
	"fmt"
	"net"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	gopsutil_net "github.com/shirou/gopsutil/v3/net"
)

// The footer shows a live network readout. A booking app that looks alive
// needs to look connected; the readout is real even though the bookings are
// not.

func checkNetworkStatusCmd() tea.Cmd {
	return func() tea.Msg {
		online := localOnline()

		perIface, err := gopsutil_net.IOCounters(true)
		if err != nil {
			return networkStatusMsg{online: online, err: err, t: time.Now()}
		}

		// Sum only real NICs, local chatter is not connectivity.
		var totalSent, totalRecv uint64
		for _, c := range perIface {
			if isVirtualInterface(c.Name) {
				continue
			}
			totalSent += c.BytesSent
			totalRecv += c.BytesRecv
		}

		return networkStatusMsg{
			online:   online,
			counters: gopsutil_net.IOCountersStat{BytesSent: totalSent, BytesRecv: totalRecv},
			t:        time.Now(),
		}
	}
}

func networkTick() tea.Cmd {
	return tea.Tick(networkPollInterval, func(time.Time) tea.Msg {
		return checkNetworkStatusCmd()()
	})
}

func isVirtualInterface(name string) bool {
	virtualPrefixes := []string{"lo", "docker", "veth", "br-", "vbox", "vmnet", "tailscale", "tun", "tap"}
	for _, prefix := range virtualPrefixes {
		if strings.HasPrefix(name, prefix) {
			return true
		}
	}
	return false
}

// localOnline determines likely online status without external probes: at
// least one up, non-loopback interface holding a global unicast address.
func localOnline() bool {
	ifaces, err := net.Interfaces()
	if err != nil {
		return false
	}
	for _, iface := range ifaces {
		if (iface.Flags&net.FlagUp) == 0 || (iface.Flags&net.FlagLoopback) != 0 {
			continue
		}
		addrs, err := iface.Addrs()
		if err != nil {
			continue
		}
		for _, a := range addrs {
			var ip net.IP
			switch v := a.(type) {
			case *net.IPNet:
				ip = v.IP
			case *net.IPAddr:
				ip = v.IP
			}
			if ip == nil {
				continue
			}
			if ip.IsGlobalUnicast() && !ip.IsLinkLocalUnicast() {
				return true
			}
		}
	}
	return false
}

func formatTraffic(bps float64) string {
	switch {
	case bps >= 1024*1024:
		return fmt.Sprintf("%.1f MB/s", bps/(1024*1024))
	case bps >= 1024:
		return fmt.Sprintf("%.1f KB/s", bps/1024)
	default:
		return fmt.Sprintf("%.0f B/s", bps)
	}
}
