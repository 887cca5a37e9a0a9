//go:build !amd64 && !arm64 && !loong64 && !mips64 && !mips64le && !ppc64 && !ppc64le && !riscv64 && !s390x

package totext

func divRem1e19(n U128) (U128, uint64) { return divRem1e19Long(n) }
