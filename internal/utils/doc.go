// Package utils provides terminal helpers shared across sevn commands,
// chiefly non-echoing passphrase prompts that work even when stdout is
// being consumed by an eval pipeline.
package utils
