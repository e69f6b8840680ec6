// Package binary downloads release artifacts and installs them into the
// managed install directory (~/.fency/bin).
//
// # Download
//
// Downloader.Fetch streams a URL to a destination path. The body is written
// to "<dest>.part" and renamed into place only after the copy succeeds, so
// an interrupted download never leaves a truncated file at the final path.
// Progress is reported synchronously through an optional ProgressFunc: as a
// fraction of Content-Length when the server declares one, otherwise as a
// running byte count. A misbehaving callback cannot fail the download.
//
// No checksum or signature verification is performed and failed downloads
// are not retried.
//
// # Install
//
// Installer.Install moves a downloaded artifact to <binDir>/<shortName>,
// where shortName is the first hyphen-delimited segment of the artifact
// filename ("widget-v1.2.0-linux-x86_64" installs as "widget"), and marks it
// 0755. An existing file of the same name is overwritten unconditionally;
// this is the only upgrade mechanism.
//
// # Usage
//
//	d := binary.NewDownloader(binary.WithProgress(binary.ConsoleProgress(os.Stdout)))
//	if err := d.Fetch(ctx, spec, dest); err != nil {
//	    return err
//	}
//
//	inst, err := binary.NewInstaller(binary.Config{HomeDir: home})
//	if err != nil {
//	    return err
//	}
//	target, err := inst.Install(dest)
package binary
