package net

import (
	"net"
	"testing"
)

func TestGetOutgoingIP(t *testing.T) {
	got, err := GetOutgoingIP()
	if err != nil {
		t.Fatal(err)
	}
	if ip := net.ParseIP(got); ip == nil || ip.To4() == nil {
		t.Errorf("GetOutgoingIP() = %q, want an IPv4 address", got)
	}
}

func TestFirstIPv4(t *testing.T) {
	if ip := firstIPv4(); ip.To4() == nil {
		t.Errorf("firstIPv4() = %v", ip)
	}
}

func TestBoardURL(t *testing.T) {
	b := Board{Name: "studio", Addr: "192.168.1.20:8888"}
	if got := b.URL(); got != "http://192.168.1.20:8888/" {
		t.Errorf("URL() = %q", got)
	}
}
