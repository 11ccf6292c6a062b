// Package qtc implements a lossless and lossy grayscale image codec
// based on recursive quadtree decomposition of square raster images
// whose side length is a power of two.
//
// An image compresses into a hierarchical partition in which each
// subtree summarizes a square region by its integer mean intensity:
// uniform regions collapse into single nodes, and interior node means
// reconstruct exactly from an integer remainder stored per parent. An
// optional lossy pass merges subtrees whose local variance falls below
// an adaptive threshold. The result is a compact bit-packed stream
// framed by a short textual header (the QTC format, §6.2).
//
// Basic usage for compressing a PGM-derived raster:
//
//	err := qtc.Compress(w, raster, &qtc.Options{Alpha: 1.0})
//
// Basic usage for decompressing:
//
//	raster, err := qtc.Decompress(r)
package qtc
