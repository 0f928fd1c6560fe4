// Package chart prepares extracted sample sequences for visualization:
// restricting to the requested time window, downsampling to a point budget,
// computing a presentable Y-axis range and generating time-axis labels.
//
// Every transformation is pure: samples in, samples and metadata out, with
// the current time injected as a parameter so behavior is deterministic
// under test. Renderers consume the output as-is; nothing in this package
// draws anything.
package chart
