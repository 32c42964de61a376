package app

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"context"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"go.trai.ch/base47/internal/core/domain"
	"go.trai.ch/zerr"
)

// InstallOptions controls Install.
type InstallOptions struct {
	// Name overrides the set folder name. The set suffix is added when missing.
	Name string
	// Force replaces an existing set of the same name.
	Force bool
}

// Install copies a set folder, or extracts a .zip, .tar.gz or .tgz archive,
// into the themes root and refreshes the caches. It returns the new slug.
func (a *App) Install(ctx context.Context, source string, opts InstallOptions) (string, error) {
	root := a.discovery.Root()
	if err := os.MkdirAll(root, domain.DirPerm); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", root)
	}

	info, err := os.Stat(source)
	if err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "source", source)
	}

	staging, err := os.MkdirTemp(root, ".base47-install-")
	if err != nil {
		return "", zerr.Wrap(err, domain.ErrInstallFailed.Error())
	}
	defer func() { _ = os.RemoveAll(staging) }()

	var (
		content string
		name    string
	)
	if info.IsDir() {
		content = filepath.Join(staging, filepath.Base(source))
		if err := copyTree(source, content); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "source", source)
		}
		name = filepath.Base(filepath.Clean(source))
	} else {
		if err := extract(source, staging); err != nil {
			return "", err
		}
		content, name = unwrapSingleDir(staging, archiveStem(source))
	}

	if opts.Name != "" {
		name = opts.Name
	}
	slug, err := setName(name)
	if err != nil {
		return "", err
	}

	target := filepath.Join(root, slug)
	if _, err := os.Stat(target); err == nil {
		if !opts.Force {
			return "", zerr.With(domain.ErrSetAlreadyExists, "set", slug)
		}
		if err := os.RemoveAll(target); err != nil {
			return "", zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", target)
		}
	}
	if err := os.Rename(content, target); err != nil {
		return "", zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "path", target)
	}

	a.logger.Info("installed " + slug)
	return slug, a.Refresh(ctx)
}

// Remove deletes a set folder, clears its switches and refreshes the caches.
func (a *App) Remove(ctx context.Context, slug string) error {
	sess := a.discovery.NewSession()
	set, ok := sess.TemplateSets(ctx, false).Get(slug)
	if !ok {
		return zerr.With(domain.ErrSetNotFound, "set", slug)
	}
	if filepath.Dir(set.Path) != a.discovery.Root() {
		return zerr.With(domain.ErrRemoveFailed, "path", set.Path)
	}

	var errs error
	errs = errors.Join(errs, a.active.Deactivate(ctx, sess, slug))
	errs = errors.Join(errs, a.manifests.SetManifestMode(ctx, slug, false))
	errs = errors.Join(errs, a.loader.SetSmartMode(ctx, slug, false))
	if a.settings.DefaultSet(ctx) == slug {
		errs = errors.Join(errs, a.settings.SetDefaultSet(ctx, ""))
	}
	if errs != nil {
		a.logger.Error(errs)
	}

	if err := os.RemoveAll(set.Path); err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRemoveFailed.Error()), "path", set.Path)
	}

	a.logger.Info("removed " + slug)
	return a.Refresh(ctx)
}

// setName validates a folder name and adds the set suffix when missing.
func setName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if name == "" || name == "." || name == ".." || strings.ContainsAny(name, `/\`) || strings.HasPrefix(name, ".") {
		return "", zerr.With(domain.ErrInvalidSetName, "name", name)
	}
	if !strings.HasSuffix(name, domain.SetSuffix) {
		name += domain.SetSuffix
	}
	return name, nil
}

func archiveStem(path string) string {
	base := filepath.Base(path)
	for _, ext := range []string{".tar.gz", ".tgz", ".zip"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// unwrapSingleDir returns the only folder inside dir when the archive held one,
// so name.zip containing name-templates/ installs as name-templates.
func unwrapSingleDir(dir, fallback string) (string, string) {
	entries, err := os.ReadDir(dir)
	if err == nil && len(entries) == 1 && entries[0].IsDir() {
		return filepath.Join(dir, entries[0].Name()), entries[0].Name()
	}

	content, err := os.MkdirTemp(dir, "set-")
	if err != nil {
		return dir, fallback
	}
	for _, e := range entries {
		_ = os.Rename(filepath.Join(dir, e.Name()), filepath.Join(content, e.Name()))
	}
	return content, fallback
}

func extract(archive, dest string) error {
	lower := strings.ToLower(archive)
	var err error
	switch {
	case strings.HasSuffix(lower, ".zip"):
		err = extractZip(archive, dest)
	case strings.HasSuffix(lower, ".tar.gz"), strings.HasSuffix(lower, ".tgz"):
		err = extractTarGz(archive, dest)
	default:
		return zerr.With(domain.ErrInstallFailed, "source", archive)
	}
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrInstallFailed.Error()), "source", archive)
	}
	return nil
}

// safeJoin resolves an archive entry name below dest.
func safeJoin(dest, name string) (string, error) {
	target := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, target)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", zerr.With(domain.ErrArchiveEntryOutsideRoot, "entry", name)
	}
	return target, nil
}

func extractZip(archive, dest string) error {
	r, err := zip.OpenReader(archive)
	if err != nil {
		return err
	}
	defer func() { _ = r.Close() }()

	for _, f := range r.File {
		target, err := safeJoin(dest, f.Name)
		if err != nil {
			return err
		}
		if f.FileInfo().IsDir() {
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
			continue
		}
		if !f.Mode().IsRegular() {
			continue
		}
		rc, err := f.Open()
		if err != nil {
			return err
		}
		err = writeFile(target, rc)
		_ = rc.Close()
		if err != nil {
			return err
		}
	}
	return nil
}

func extractTarGz(archive, dest string) error {
	//nolint:gosec // Archive path is supplied by the operator.
	f, err := os.Open(archive)
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	gz, err := gzip.NewReader(f)
	if err != nil {
		return err
	}
	defer func() { _ = gz.Close() }()

	tr := tar.NewReader(gz)
	for {
		hdr, err := tr.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		target, err := safeJoin(dest, hdr.Name)
		if err != nil {
			return err
		}
		switch hdr.Typeflag {
		case tar.TypeDir:
			if err := os.MkdirAll(target, domain.DirPerm); err != nil {
				return err
			}
		case tar.TypeReg:
			if err := writeFile(target, tr); err != nil {
				return err
			}
		}
	}
}

func copyTree(src, dest string) error {
	return filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dest, rel)

		switch {
		case d.IsDir():
			return os.MkdirAll(target, domain.DirPerm)
		case d.Type().IsRegular():
			//nolint:gosec // Source tree is supplied by the operator.
			in, err := os.Open(path)
			if err != nil {
				return err
			}
			defer func() { _ = in.Close() }()
			return writeFile(target, in)
		default:
			// Symlinks and special files are not copied.
			return nil
		}
	})
}

func writeFile(path string, r io.Reader) error {
	if err := os.MkdirAll(filepath.Dir(path), domain.DirPerm); err != nil {
		return err
	}
	//nolint:gosec // Path is checked against the staging folder.
	out, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, domain.FilePerm)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, r); err != nil { //nolint:gosec // Theme archives are trusted input.
		_ = out.Close()
		return err
	}
	return out.Close()
}
