// SPDX-License-Identifier: EPL-2.0

// Package driver pumps a stream.Sampler from two timer loops, standing in
// for the render and prefetch callbacks a real audio backend would run.
//
// # The two loops
//
// The render loop fires at the cadence of the configured frame count and
// calls ReadSamples into a caller-supplied Sink. It never blocks on
// storage: if the cache has not caught up it simply delivers fewer
// samples. The prime loop fires on its own slower interval and refills
// the cache with Prime, which is where all storage I/O happens.
//
//	d, err := driver.New(sampler, func(chunk []int16) {
//	    // hand chunk to the audio backend
//	}, driver.Config{})
//	if err != nil {
//	    // handle error
//	}
//
//	d.Start()
//	defer d.Stop()
package driver
