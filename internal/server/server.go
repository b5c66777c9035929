package server

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/san-kum/spinwheel/internal/sim"
	"github.com/san-kum/spinwheel/internal/wheel"
)

// Server runs one shared wheel and streams its state to every connected
// WebSocket client. All wheel access happens on the simulation goroutine;
// clients only talk to it through the command channel.
type Server struct {
	cfg      Config
	hub      *Hub
	wheel    *wheel.Wheel
	commands chan Command

	tick int64
	t    float64
}

func New(cfg Config, w *wheel.Wheel) *Server {
	return &Server{
		cfg:      cfg,
		hub:      NewHub(),
		wheel:    w,
		commands: make(chan Command, 256),
	}
}

// Run starts the simulation loop and serves HTTP until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/healthz", s.handleHealth)
	router.GET("/config", s.handleConfig)
	router.GET("/ws", s.handleWS)
	if s.cfg.StaticDir != "" {
		router.Static("/app", s.cfg.StaticDir)
	}

	srv := &http.Server{Addr: s.cfg.Addr, Handler: router}

	go s.loop(ctx)

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	log.Printf("listening on %s (tick %d Hz, broadcast %d Hz)", s.cfg.Addr, s.cfg.TickHz, s.cfg.BroadcastHz)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}

// loop owns the wheel: it applies queued commands, steps the physics in
// real time, and broadcasts frames at the configured rate.
func (s *Server) loop(ctx context.Context) {
	broadcastEvery := int64(s.cfg.TickHz / s.cfg.BroadcastHz)
	if broadcastEvery <= 0 {
		broadcastEvery = 1
	}

	ticker := time.NewTicker(time.Second / time.Duration(s.cfg.TickHz))
	defer ticker.Stop()

	last := time.Now()
	for {
		select {
		case <-ctx.Done():
			return

		case cmd := <-s.commands:
			switch cmd.Op {
			case OpSpin:
				s.wheel.ApplySpinImpulse()
			case OpReset:
				s.wheel.ResetBall()
			}

		case now := <-ticker.C:
			dt := sim.ClampStep(now.Sub(last).Seconds())
			last = now

			s.wheel.Update(dt)
			s.tick++
			s.t += dt

			if s.tick%broadcastEvery == 0 {
				s.broadcastFrame()
			}
		}
	}
}

func (s *Server) broadcastFrame() {
	frame := Frame{
		Tick:       s.tick,
		Time:       s.t,
		WheelAngle: s.wheel.Angle,
		WheelOmega: s.wheel.Omega,
		BallX:      s.wheel.Ball.X,
		BallY:      s.wheel.Ball.Y,
		BallVX:     s.wheel.Ball.VX,
		BallVY:     s.wheel.Ball.VY,
		SpinAngle:  s.wheel.Ball.SpinAngle,
		SpinOmega:  s.wheel.Ball.SpinOmega,
		Touching:   s.wheel.LastContact.Touching,
		Sticking:   s.wheel.LastContact.Sticking,
	}

	data, err := json.Marshal(frame)
	if err != nil {
		log.Printf("marshal frame: %v", err)
		return
	}
	s.hub.Broadcast(data)
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"clients": s.hub.NumClients(),
	})
}

func (s *Server) handleConfig(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"tick_hz":      s.cfg.TickHz,
		"broadcast_hz": s.cfg.BroadcastHz,
		"physics":      s.wheel.Config(),
	})
}

func (s *Server) handleWS(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("[WS] upgrade failed: %v", err)
		return
	}

	client := newClient(s.hub, conn, s.commands)
	s.hub.Register(client)

	go client.writePump()
	go client.readPump()
}
