package strace

import "strconv"

// ArgFormatter renders one raw argument register.
type ArgFormatter func(v uint64) string

// I32 formats the low 32 bits as a signed integer.
func I32(v uint64) string {
	return strconv.FormatInt(int64(int32(uint32(v))), 10)
}

// U32 formats the low 32 bits as an unsigned integer.
func U32(v uint64) string {
	return strconv.FormatUint(v&0xffffffff, 10)
}

// Ptr formats an address in lowercase hex with a 0x prefix.
func Ptr(v uint64) string {
	return "0x" + strconv.FormatUint(v, 16)
}

// Size formats an unsigned length.
func Size(v uint64) string {
	return strconv.FormatUint(v, 10)
}

// Off formats a file offset as a signed 64-bit integer.
func Off(v uint64) string {
	return strconv.FormatInt(int64(v), 10)
}

// Syscall names a syscall and the formatters for its leading arguments.
type Syscall struct {
	Name string
	Args []ArgFormatter
}

func sc(name string, args ...ArgFormatter) Syscall {
	return Syscall{Name: name, Args: args}
}

// SysTable maps RISC-V Linux syscall numbers to their descriptions.
var SysTable = map[uint64]Syscall{
	93:   sc("exit", I32),
	94:   sc("exit_group", I32),
	172:  sc("getpid"),
	129:  sc("kill", I32, I32),
	131:  sc("tgkill", I32, I32, I32),
	63:   sc("read", I32, Ptr, Size),
	64:   sc("write", I32, Ptr, Size),
	56:   sc("openat", I32, Ptr, I32, I32),
	57:   sc("close", I32),
	62:   sc("lseek", I32, Off, I32),
	214:  sc("brk", Ptr),
	37:   sc("linkat", I32, Ptr, I32, Ptr, I32),
	35:   sc("unlinkat", I32, Ptr, I32),
	34:   sc("mkdirat", I32, Ptr, I32),
	38:   sc("renameat", I32, Ptr, I32, Ptr),
	49:   sc("chdir", Ptr),
	17:   sc("getcwd", Ptr, Size),
	80:   sc("fstat", I32, Ptr),
	79:   sc("fstatat", I32, Ptr, Ptr, I32),
	48:   sc("faccessat", I32, Ptr, I32),
	67:   sc("pread", I32, Ptr, Size, Off),
	68:   sc("pwrite", I32, Ptr, Size, Off),
	160:  sc("uname", Ptr),
	174:  sc("getuid"),
	175:  sc("geteuid"),
	176:  sc("getgid"),
	177:  sc("getegid"),
	178:  sc("gettid"),
	222:  sc("mmap", Ptr, Size, I32, I32, I32, Off),
	215:  sc("munmap", Ptr, Size),
	216:  sc("mremap", Ptr, Size, Size, I32),
	226:  sc("mprotect", Ptr, Size, I32),
	261:  sc("prlimit64", I32, I32, Ptr, Ptr),
	134:  sc("rt_sigaction", I32, Ptr, Ptr, Size),
	66:   sc("writev", I32, Ptr, I32),
	169:  sc("gettimeofday", Ptr),
	153:  sc("times", Ptr),
	25:   sc("fcntl", I32, I32, I32),
	46:   sc("ftruncate", I32, Off),
	61:   sc("getdents", I32, Ptr, I32),
	23:   sc("dup", I32),
	24:   sc("dup3", I32, I32, I32),
	78:   sc("readlinkat", I32, Ptr, Ptr, Size),
	135:  sc("rt_sigprocmask", I32, Ptr, Ptr),
	29:   sc("ioctl", I32, I32),
	163:  sc("getrlimit", I32, Ptr),
	164:  sc("setrlimit", I32, Ptr),
	165:  sc("getrusage", I32, Ptr),
	113:  sc("clock_gettime", I32, Ptr),
	96:   sc("set_tid_address", Ptr),
	99:   sc("set_robust_list", Ptr, Size),
	233:  sc("madvise", Ptr, Size, I32),
	291:  sc("statx", I32, Ptr, I32, U32, Ptr),
	71:   sc("sendfile", I32, I32, Off, Size),
	1024: sc("open", Ptr, I32, I32),
	1025: sc("link", Ptr, Ptr),
	1026: sc("unlink", Ptr),
	1030: sc("mkdir", Ptr, I32),
	1033: sc("access", Ptr, I32),
	1038: sc("stat", Ptr, Ptr),
	1039: sc("lstat", Ptr, Ptr),
	1062: sc("time", Ptr),
}
