package message

type bodyKind uint8

const (
	bodyNone bodyKind = iota
	bodySingle
	// bodyMultipart is reserved until multipart encoding exists; nothing
	// outside this package can produce it.
	bodyMultipart
)

type body struct {
	kind bodyKind
	data []byte
}

func singleBody(data []byte) body {
	return body{kind: bodySingle, data: data}
}

func (b body) clone() body {
	if b.data == nil {
		return b
	}
	return body{kind: b.kind, data: append([]byte(nil), b.data...)}
}
