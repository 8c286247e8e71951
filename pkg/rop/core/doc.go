// Package core contains pipeline plumbing: channel helpers, worker
// configuration carried in the context, and the Locomotive worker loop
// that drives stages. Package lite builds its stages on top of it.
package core
