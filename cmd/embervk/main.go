package main

import (
	"flag"
	"runtime"

	"github.com/andewx/embervk"
)

var (
	validation = flag.Bool("validation", false, "enable the Khronos validation layer")
	trace      = flag.Bool("trace", false, "log per-frame activity")
)

func init() {
	// GLFW and the Vulkan loader both require the main OS thread.
	runtime.LockOSThread()
}

func main() {
	flag.Parse()

	config := embervk.DefaultConfig()
	config.EnableValidation = *validation
	if *trace {
		embervk.SetLogLevel(embervk.LogTrace)
	}

	render, err := embervk.NewCoreRender(config)
	if err != nil {
		embervk.Errorf("%v", err)
		return
	}
	defer render.Destroy()

	if err := render.Run(); err != nil {
		embervk.Errorf("%v", err)
	}
}
