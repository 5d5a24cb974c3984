package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/lane-runner/internal/platform/tui"
)

var (
	flagSSHAddr     string
	flagHostKey     string
	flagIdleTimeout int
	flagMaxPerIP    int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the lane runner SSH server",
	Long: `Start an SSH server that lets users connect and play.

Each SSH connection gets its own session on the title screen.
Runs are stored per-server, so everyone shares the same history.
Sessions play silently; the host's sound device is never used.

Host key handling:
  - If --host-key is provided, uses that key file
  - Otherwise, auto-generates a key at ~/.lanerunner/host_key

Examples:
  lanerunner serve                           # Listen on :23234 with auto-generated key
  lanerunner serve --ssh :2222               # Listen on port 2222
  lanerunner serve --host-key ./my_host_key  # Use specific host key
  lanerunner serve --max-per-ip 1            # One session per address

Users can connect with:
  ssh localhost -p 23234`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	defaults := tui.DefaultSSHServerConfig()
	serveCmd.Flags().StringVar(&flagSSHAddr, "ssh", defaults.Address, "SSH server address (host:port)")
	serveCmd.Flags().StringVar(&flagHostKey, "host-key", "", "Path to host key file (auto-generated if not specified)")
	serveCmd.Flags().IntVar(&flagIdleTimeout, "idle-timeout", int(defaults.IdleTimeout/time.Minute), "Idle timeout in minutes before disconnecting")
	serveCmd.Flags().IntVar(&flagMaxPerIP, "max-per-ip", defaults.MaxSessionsPerIP, "Concurrent sessions allowed per address (0 = unlimited)")
}

func runServe(_ *cobra.Command, _ []string) {
	rules, _, preset, err := loadRules()
	if err != nil {
		fail("%v", err)
	}
	logger := newLogger(os.Stderr, "lanerunner-ssh")

	cfg := tui.SSHServerConfig{
		Address:          flagSSHAddr,
		HostKeyPath:      flagHostKey,
		DBPath:           flagDBPath,
		IdleTimeout:      time.Duration(flagIdleTimeout) * time.Minute,
		MaxSessionsPerIP: flagMaxPerIP,
		TickRate:         flagFPS,
		Difficulty:       preset,
	}

	server, err := tui.NewSSHServer(cfg, rules, logger)
	if err != nil {
		fail("creating server: %v", err)
	}

	fmt.Printf("Starting lane runner SSH server on %s\n", server.Addr())
	fmt.Println("Press Ctrl+C to stop")

	if err := server.ListenAndServe(); err != nil {
		fail("server: %v", err)
	}
}
