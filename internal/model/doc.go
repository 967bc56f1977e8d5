package model

// Package model defines domain data structures used across the app: output
// formats, conversion jobs, job status enums and the convert-command
// enablement record. Structures are plain values so the shell and the UI can
// pass them around without sharing mutable state.
