package net

import (
	"net"
)

// GetOutgoingIP finds the address other machines on the LAN reach this host
// at. Dialing UDP sends no packets; it only selects the outgoing interface.
func GetOutgoingIP() (string, error) {
	conn, err := net.Dial("udp", "8.8.8.8:80")
	if err != nil {
		// no route out: pick an interface address instead
		return firstIPv4().String(), nil
	}
	defer conn.Close()

	return conn.LocalAddr().(*net.UDPAddr).IP.String(), nil
}

// firstIPv4 returns the first IPv4 address of an interface that is up and not
// loopback, or 127.0.0.1.
func firstIPv4() net.IP {
	ifaces, _ := net.Interfaces()
	for _, iface := range ifaces {
		if iface.Flags&net.FlagUp == 0 || iface.Flags&net.FlagLoopback != 0 {
			continue
		}
		addrs, _ := iface.Addrs()
		for _, a := range addrs {
			if ipnet, ok := a.(*net.IPNet); ok && ipnet.IP.To4() != nil {
				return ipnet.IP.To4()
			}
		}
	}
	return net.IPv4(127, 0, 0, 1)
}
