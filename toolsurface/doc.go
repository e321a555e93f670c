// Package toolsurface builds the two tool descriptors handed to an
// embedding agent runtime: search and execute. It holds no state of its
// own; every descriptor is derived fresh from the arguments passed in.
package toolsurface
