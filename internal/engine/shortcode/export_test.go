package shortcode

var FileSlug = fileSlug
