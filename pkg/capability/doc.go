// SPDX-License-Identifier: MPL-2.0

// Package capability defines the contract between surety and its optional
// sibling packages.
//
// A sibling package (e.g. surety-config, surety-diff) ships its functionality
// in its own Go module. When an application compiles a sibling in, the sibling
// announces itself by registering a Provider from an init function:
//
//	func init() {
//	    capability.MustRegister(capability.Provider{
//	        Name: "surety-config",
//	        Open: func() (capability.Module, error) { return New() },
//	    })
//	}
//
// The application then only needs a blank import:
//
//	import _ "github.com/surety/surety-config"
//
// A sibling that was never compiled in simply has no Provider entry, which the
// binder treats as "not installed". The package also provides Registry, the
// name -> loaded-module table that bound capabilities live in.
package capability
