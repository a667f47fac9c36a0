// SPDX-FileCopyrightText: 2026 SAP SE or an SAP affiliate company and Gardener contributors
//
// SPDX-License-Identifier: Apache-2.0

package tests

import (
	"flag"
	"strconv"

	"k8s.io/klog/v2"
)

// SetKlogV sets the logging flags when unit tests are run
func SetKlogV(level int) {
	fs := flag.NewFlagSet("klog", flag.ContinueOnError)
	klog.InitFlags(fs)
	_ = fs.Set("v", strconv.Itoa(level))
	_ = fs.Set("logtostderr", "true")
}
