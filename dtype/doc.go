// Package dtype is the array descriptor type system: numpy-style element
// descriptors for strided bulk data.
//
// A descriptor is one of:
//
//	Scalar       two-character type string, e.g. ">H", "<h", "=f"
//	Record       named fields at packed offsets, or overlaid at offset 0
//	Subarray     (element, length)
//	Placeholder  flexible host bytes or string object
//
// String renders the numpy spelling:
//
//	[('a', '=?'), ('b', '=b'), ('c', '=f')]
//	('=b', (128,))
//	{'names': ['i', 'f'], 'formats': ['<i', '<f'], 'offsets': [0, 0], 'itemsize': 4}
package dtype
