package notify

import (
	"encoding/json"
	"errors"
	"log"
	"net"
	"sync"
)

const (
	RegisterMessageType   = "register"
	NewBookingMessageType = "new_booking"
)

// RegisterMessage is sent by a staff device to start receiving booking
// pushes at its UDP source address.
type RegisterMessage struct {
	Type    string `json:"type"`
	StaffID string `json:"staff_id"`
}

// NewBookingMessage is pushed to every registered staff device the moment
// a booking arrives through the public form.
type NewBookingMessage struct {
	Type         string `json:"type"`
	BookingID    string `json:"booking_id"`
	CustomerName string `json:"customer_name"`
	BookingDate  string `json:"booking_date"`
	BookingTime  string `json:"booking_time"`
	GuestsCount  int    `json:"guests_count"`
}

type Client struct {
	StaffID string
	Addr    *net.UDPAddr
}

type Registry struct {
	mu      sync.RWMutex
	clients map[string]Client
}

func NewRegistry() *Registry {
	return &Registry{clients: make(map[string]Client)}
}

func (r *Registry) Register(staffID string, addr *net.UDPAddr) {
	if staffID == "" || addr == nil {
		return
	}
	r.mu.Lock()
	r.clients[staffID] = Client{StaffID: staffID, Addr: addr}
	r.mu.Unlock()
}

func (r *Registry) Remove(staffID string) {
	r.mu.Lock()
	delete(r.clients, staffID)
	r.mu.Unlock()
}

func (r *Registry) Snapshot() []Client {
	r.mu.RLock()
	defer r.mu.RUnlock()
	clients := make([]Client, 0, len(r.clients))
	for _, client := range r.clients {
		clients = append(clients, client)
	}
	return clients
}

type Server struct {
	addr     string
	registry *Registry
	logger   *log.Logger
	conn     *net.UDPConn
}

func NewServer(addr string, registry *Registry, logger *log.Logger) *Server {
	if logger == nil {
		logger = log.Default()
	}
	return &Server{addr: addr, registry: registry, logger: logger}
}

func (s *Server) Run() error {
	udpAddr, err := net.ResolveUDPAddr("udp", s.addr)
	if err != nil {
		return err
	}
	conn, err := net.ListenUDP("udp", udpAddr)
	if err != nil {
		return err
	}
	s.conn = conn
	defer conn.Close()

	s.logger.Printf("UDP notify server listening on %s", s.addr)

	buffer := make([]byte, 2048)
	for {
		n, addr, err := conn.ReadFromUDP(buffer)
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				return nil
			}
			return err
		}
		msg, err := parseRegisterMessage(buffer[:n])
		if err != nil {
			s.logger.Printf("invalid UDP message from %s: %v", addr, err)
			continue
		}
		if msg.Type != RegisterMessageType {
			continue
		}
		s.registry.Register(msg.StaffID, addr)
		s.logger.Printf("registered staff device %s (%s)", msg.StaffID, addr)
	}
}

func (s *Server) Close() error {
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	if errors.Is(err, net.ErrClosed) {
		return nil
	}
	return err
}

// BroadcastNewBooking pushes one datagram per registered device. A device
// that fails twice in a row is dropped from the registry; it re-registers
// the next time it comes online.
func (s *Server) BroadcastNewBooking(msg NewBookingMessage) {
	if s.conn == nil {
		s.logger.Printf("UDP notify server not running")
		return
	}
	msg.Type = NewBookingMessageType
	payload, err := json.Marshal(msg)
	if err != nil {
		s.logger.Printf("failed to marshal broadcast: %v", err)
		return
	}

	clients := s.registry.Snapshot()
	for _, client := range clients {
		s.sendWithRetry(client, payload)
	}
}

func (s *Server) sendWithRetry(client Client, payload []byte) {
	if err := s.sendOnce(client, payload); err == nil {
		return
	}
	if err := s.sendOnce(client, payload); err != nil {
		s.logger.Printf("failed to notify staff %s at %s: %v", client.StaffID, client.Addr, err)
		s.registry.Remove(client.StaffID)
	}
}

func (s *Server) sendOnce(client Client, payload []byte) error {
	if client.Addr == nil {
		return errors.New("missing client address")
	}
	_, err := s.conn.WriteToUDP(payload, client.Addr)
	return err
}

func parseRegisterMessage(data []byte) (RegisterMessage, error) {
	var msg RegisterMessage
	if err := json.Unmarshal(data, &msg); err != nil {
		return msg, err
	}
	if msg.StaffID == "" || msg.Type == "" {
		return msg, errors.New("missing required fields")
	}
	return msg, nil
}
