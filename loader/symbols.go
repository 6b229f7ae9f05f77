package loader

// BindingsSymbol is the conventional symbol name a native artifact
// exports as its key-value table.
const BindingsSymbol = "Bindings"

// Symbol is a raw shared-library symbol address produced by the Dylib
// loader. It is usable with purego.SyscallN or purego.RegisterFunc.
type Symbol uintptr
