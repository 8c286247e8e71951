// Package lite lifts solo primitives onto channels for concurrent
// pipelines. Each stage factory returns a core.Engine; Run and Turnout
// drive an engine over an input channel on a fixed number of lines.
//
// Common usage:
// - Run/Turnout: execute an engine with configurable parallelism
// - Drain: like Turnout, but unfinished inputs come out as cancels
// - Validate/Try/Switch/Map/MapErr/Tee/DoubleTee: channel-lifted stages
// - Finally: map Result[In] to Out on completion
package lite
