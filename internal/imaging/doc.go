// Package imaging provides the image-side collaborators of the HOG descriptor:
// decoding, grayscale conversion, region extraction, feature rendering and encoding.
//
// The descriptor core in package hog never sees pixel formats. This package turns
// files and image.Image values into hog.Intensity grids and turns finished
// hog.FeatureGrid values back into pictures. All operations use a coordinate system
// where (0,0) is at the top-left corner, X increases rightward, and Y increases
// downward.
//
// # Grayscale
//
// Luma converts every pixel with the fixed integer weighting
// (299*R + 587*G + 114*B) / 1000 on 8-bit components.
//
// # Rendering
//
// RenderFeatures draws one line segment per (cell, bin) through the cell center,
// oriented along the bin angle. RenderGray uses the normalized magnitude as the gray
// level; RenderOrientation maps the angle to a hue. CellGridOverlay outlines the
// cell partition on top of the source image.
//
// # Formats
//
// Input: PNG, JPEG, GIF, BMP, TIFF and WebP. Output files: PNG, JPEG and BMP, chosen
// by extension. Tool results carry PNG as base64.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. All other functions are stateless
// and may be called concurrently on different images.
package imaging
