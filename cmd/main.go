package main

import (
	"flag"
	"fmt"
	"log"
	"runtime"

	"github.com/richinsley/gltriangle/glfwcontext"
	options "github.com/richinsley/gltriangle/options"
	renderer "github.com/richinsley/gltriangle/renderer"
)

func init() {
	runtime.LockOSThread()
}

func run(opts *options.Options) {
	r, err := renderer.NewRenderer(opts)
	if err != nil {
		log.Fatalf("Failed to create renderer: %v", err)
	}
	defer r.Shutdown()

	if err := r.InitScene(); err != nil {
		log.Fatalf("Failed to initialize scene: %v", err)
	}

	log.Println("Starting render loop...")
	r.Run()
}

func main() {
	opts := &options.Options{
		Width:  flag.Int("width", options.DefaultWidth, "Width of the window"),
		Height: flag.Int("height", options.DefaultHeight, "Height of the window"),
		Title:  flag.String("title", options.DefaultTitle, "Window title"),
		Help:   flag.Bool("help", false, "Show help message"),
	}
	flag.Parse()

	if *opts.Help {
		fmt.Println("OpenGL Triangle Bootstrap")
		flag.PrintDefaults()
		return
	}

	if err := glfwcontext.InitGraphics(); err != nil {
		log.Fatalf("Failed to initialize GLFW: %v", err)
	}
	defer glfwcontext.TerminateGraphics()

	run(opts)
}
