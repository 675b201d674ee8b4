package socket

// Match reports whether socket IDs a and b are compatible across a shared
// face. (f,m) mirror pairs with matching prefixes match; any other pairing
// of f/m does not (forbidding f-f and m-m); all other sockets (the
// symmetric "s" and every vertical suffix) match on exact string equality.
func Match(a, b string) bool {
	if a == "" || b == "" {
		return false
	}
	la := a[len(a)-1]
	lb := b[len(b)-1]

	if (la == 'f' && lb == 'm') || (la == 'm' && lb == 'f') {
		return a[:len(a)-1] == b[:len(b)-1]
	}
	if a == b && la != 'f' && la != 'm' {
		return true
	}

	return false
}
