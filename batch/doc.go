// SPDX-License-Identifier: EPL-2.0

// Package batch converts every audio file in a directory.
//
// Files are found with Find, named with OutputName and converted
// concurrently by Run through any FileConverter, usually a
// *foxwav.Converter. Per-file failures are collected in the Summary
// rather than stopping the run.
package batch
