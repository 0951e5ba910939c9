package cryptonight

import "golang.org/x/sys/cpu"

// hasAESNI reports whether the host CPU exposes the AESENC instruction used
// by the hardware round primitives (C3). It is read once by x/sys/cpu at
// process startup (CPUID leaf 1, ECX bit 25) and never re-probed. Platforms
// x/sys/cpu does not run CPUID detection on report false here, forcing the
// software path.
var hasAESNI = cpu.X86.HasAES
