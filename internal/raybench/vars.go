package raybench

var (
	Debug     = false // set to true for verbose debug output and ray statistics
	PNG       = false // set to true to also save the image as PNG
	BMP       = false // set to true to also save the image as BMP
	GIF       = false // set to true to save a two frame GIF (sequential vs parallel buffer)
	Reconcile = false // set to true to write parallel rows back into the image
)
