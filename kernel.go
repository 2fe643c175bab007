package dither

import (
	"fmt"
	"strings"

	"github.com/tphakala/go-epd-dither/internal/diffuse"
)

// Kernel is an error diffusion matrix.
type Kernel = diffuse.Kernel

// Target is one weighted offset of a Kernel.
type Target = diffuse.Target

// Built-in kernels.
var (
	NoDiffuse         = diffuse.NoDiffuse
	FloydSteinberg    = diffuse.FloydSteinberg
	JarvisJudiceNinke = diffuse.JarvisJudiceNinke
	Atkinson          = diffuse.Atkinson
	Sierra            = diffuse.Sierra
)

// KernelNames lists the accepted kernel names.
func KernelNames() []string {
	kernels := diffuse.Kernels()
	names := make([]string, len(kernels))
	for i, k := range kernels {
		names[i] = k.Name
	}
	return names
}

// ParseKernel returns the built-in kernel with the given name.
// "jarvis-judice-and-ninke" is accepted as an alias.
func ParseKernel(name string) (Kernel, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == "jarvis-judice-and-ninke" {
		name = diffuse.JarvisJudiceNinke.Name
	}
	k, ok := diffuse.KernelByName(name)
	if !ok {
		return Kernel{}, fmt.Errorf("%w: unknown kernel %q (accepted: %s)",
			ErrInvalidConfig, name, strings.Join(KernelNames(), ", "))
	}
	return k, nil
}
