package bytepacket

import (
	"bufio"
	"os"
	"path/filepath"
	"regexp"
)

// rootPath stores the root of the bytepacket installation
var rootPath string

// confPath stores path to bytepacket.conf
var confPath string

// config stores the key-value pairs read from confPath
var config map[string]string

// pat stores a valid key-value pattern line
var pat = regexp.MustCompile("^([A-Z0-9_]+)=(.*)$")

// PacketDirKey is the config key naming the directory bare packet names are resolved in
const PacketDirKey = "BYTEPACKET_PACKET_DIR"

// initConfig initializes the config constants
func initConfig() error {
	root, ok := os.LookupEnv("BYTEPACKET_DIR")
	if !ok {
		root = "/"
	}
	rootPath = root

	conf, ok := os.LookupEnv("BYTEPACKET_CONF")
	if !ok {
		conf = filepath.Join(rootPath, "etc", "bytepacket.conf")
	}
	confPath = conf

	f, err := os.Open(confPath)
	if err != nil {
		config = nil
		return err
	}
	defer f.Close()

	// if we reach at this point, it means we have a valid config
	// that can be read, so we can make the map non-nil
	config = make(map[string]string)
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if matches := pat.FindStringSubmatch(scanner.Text()); matches != nil {
			config[matches[1]] = matches[2]
		}
	}

	return scanner.Err()
}

// PacketDir returns the directory bare packet names passed to Open are resolved in
func PacketDir() string {
	if dir, present := config[PacketDirKey]; present && dir != "" {
		if filepath.IsAbs(dir) {
			return dir
		}
		return filepath.Join(rootPath, dir)
	}

	return filepath.Join(os.TempDir(), "bytepacket")
}
