package net

import (
	"fmt"
	"net"
	"os"
	"time"

	"github.com/hashicorp/mdns"
)

// ServiceType is the DNS-SD service boards advertise on the local network.
const ServiceType = "_mypaintboard._tcp"

// Board is a board found on the local network.
type Board struct {
	Name string
	Addr string
	Info []string
}

// URL is the address a browser should open.
func (b Board) URL() string {
	return "http://" + b.Addr + "/"
}

// Advertise announces a board listening on port until the returned server is
// shut down.
func Advertise(name string, port int) (*mdns.Server, error) {
	host, err := os.Hostname()
	if err != nil {
		return nil, fmt.Errorf("could not get hostname: %w", err)
	}
	if name == "" {
		name = host
	}

	service, err := mdns.NewMDNSService(
		name,
		ServiceType,
		"",
		"",
		port,
		[]net.IP{firstIPv4()},
		[]string{"MyPaintBoard", "path=/"},
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create mDNS service: %w", err)
	}

	server, err := mdns.NewServer(&mdns.Config{Zone: service})
	if err != nil {
		return nil, fmt.Errorf("failed to start mDNS server: %w", err)
	}
	return server, nil
}

// Browse queries the local network for boards for the given duration and
// calls found once per answering board.
func Browse(timeout time.Duration, found func(Board)) error {
	entries := make(chan *mdns.ServiceEntry, 8)
	done := make(chan struct{})
	go func() {
		defer close(done)
		seen := make(map[string]bool)
		for e := range entries {
			if e.AddrV4 == nil || e.Port == 0 {
				continue
			}
			addr := fmt.Sprintf("%s:%d", e.AddrV4.String(), e.Port)
			if seen[addr] {
				continue
			}
			seen[addr] = true
			found(Board{Name: e.Name, Addr: addr, Info: e.InfoFields})
		}
	}()

	params := mdns.DefaultParams(ServiceType)
	params.Entries = entries
	params.Timeout = timeout
	params.DisableIPv6 = true
	err := mdns.Query(params)
	close(entries)
	<-done
	if err != nil {
		return fmt.Errorf("mDNS query failed: %w", err)
	}
	return nil
}
