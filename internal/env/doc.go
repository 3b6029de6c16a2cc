// Package env turns a decrypted variable map into something a shell can
// consume: export lines for eval, or an interactive subshell with the
// variables injected into its environment. It never writes plaintext to
// disk.
package env
