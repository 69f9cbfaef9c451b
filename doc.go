/*
go-parseaug provides dataset annotation transformation utilities for human
parsing segmentation datasets (CIHP, LIP, MHPv2 and similar).

It implements the geometric routines needed to keep instance annotations and
dense part label maps consistent under training time image augmentations:
horizontal flips with left/right part label swapping, center preserving
affine resizes, center crop/pad to a fixed canvas, and COCO style run length
mask arithmetic.

All operations are pure synchronous functions over in-memory data and are
safe to call concurrently from multiple data loading workers as long as each
invocation operates on its own arrays.

See example code and usage in the example subdirectory.
*/
package parseaug
