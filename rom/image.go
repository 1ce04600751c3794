// Package rom loads cartridge images and decodes their headers.
package rom

import (
	"io"
	"io/fs"
)

// Image is a raw cartridge image.
type Image struct {
	Name string
	Data []byte
}

// Load reads an image from a file system.
func Load(fsys fs.FS, name string) (img *Image, err error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return
	}

	img = &Image{
		Name: name,
		Data: data,
	}
	return
}

// Unmarshal loads image data from a reader, replacing any existing data.
func (img *Image) Unmarshal(file io.Reader) (err error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return
	}

	img.Data = data

	return
}

// Marshal writes the image data to a writer.
func (img *Image) Marshal(file io.Writer) (err error) {
	_, err = file.Write(img.Data)

	return
}

// Len returns the image size in bytes.
func (img *Image) Len() int {
	return len(img.Data)
}
