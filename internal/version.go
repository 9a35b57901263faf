package internal

// Version is the htmltrans release version
const Version = "0.3.1"
