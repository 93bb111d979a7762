package main

import (
	"fmt"
	"log"
	"os"

	"github.com/ironsheep/hog-tools-mcp/internal/server"
)

// Version information - set by ldflags during build
var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	// Configure logging to stderr (stdout is for MCP protocol)
	log.SetOutput(os.Stderr)
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "--version", "-v", "version":
			fmt.Printf("hog-tools-mcp %s\n", Version)
			fmt.Printf("  Build time: %s\n", BuildTime)
			fmt.Printf("  Git commit: %s\n", GitCommit)
			return
		case "--help", "-h", "help":
			printUsage()
			return
		case "render":
			if err := runRender(os.Args[2:], os.Stderr); err != nil {
				log.Fatalf("render: %v", err)
			}
			return
		}
	}

	cfg, err := server.ConfigFromEnv()
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	if cfg.Debug {
		log.Printf("HOG MCP Server v%s (built %s, commit %s)", Version, BuildTime, GitCommit)
		log.Printf("descriptor defaults: %d bins, %dx%d cells", cfg.Angles, cfg.CellWidth, cfg.CellHeight)
	}

	srv := server.NewWithConfig(cfg)
	if err := srv.Run(); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

func printUsage() {
	fmt.Println("hog-tools-mcp - MCP server for Histogram of Oriented Gradients descriptors")
	fmt.Println()
	fmt.Println("Usage: hog-tools-mcp [options]")
	fmt.Println("       hog-tools-mcp render -in <image> -out <image> [flags]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --version, -v    Print version information")
	fmt.Println("  --help, -h       Print this help message")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  render           Write the descriptor rendering of an image to a file")
	fmt.Println()
	fmt.Println("Environment variables:")
	fmt.Println("  HOG_MCP_ANGLES=9             Default number of orientation bins")
	fmt.Println("  HOG_MCP_CELL_WIDTH=8         Default cell width in pixels")
	fmt.Println("  HOG_MCP_CELL_HEIGHT=8        Default cell height in pixels")
	fmt.Println("  HOG_MCP_LOG_LEVEL=debug      Enable debug logging")
	fmt.Println()
	fmt.Println("This server communicates via MCP protocol over stdin/stdout.")
	fmt.Println("Configure it in your MCP client (e.g., Claude Desktop).")
}
