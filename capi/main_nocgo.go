//go:build !cgo

// When built without cgo the qtty_* exports in capi.go are excluded, so this
// stub provides the main function the package main clause requires. The real
// main lives in capi.go for the c-shared build.
package main

func main() {}
