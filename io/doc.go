// Package io provides the peripherals of the LS-8 emulator: the character
// output Console used by PRN and PRA, and the Rom holding a program image
// in the .ls8 text format, which is loaded into memory before the clock
// starts.
package io
