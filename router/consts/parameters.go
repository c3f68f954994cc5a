package consts

const (
	ParamVariant = "variant"
	ParamSize    = "size"
	ParamName    = "name"
)
