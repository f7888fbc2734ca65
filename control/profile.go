package control

// ShortenAddress 0x1234...bcdef 形式，过短的地址原样返回
func ShortenAddress(addr string) string {
	if len(addr) <= 11 {
		return addr
	}
	return addr[:6] + "..." + addr[len(addr)-5:]
}
