package qtty

// Version is the library version, reported by the C ABI's qtty_ffi_version
// and by the qtty CLI.
const Version = "0.3.0"
