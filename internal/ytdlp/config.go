package ytdlp

// Config représente les options passées à yt-dlp pour l'extraction de
// sous-titres automatiques. Le jeu standard reprend la commande historique :
// --skip-download --write-auto-subs --sub-langs en.* --convert-subs srt.
type Config struct {
	SubLangs       string // motif de langues, ex: "en.*" pour toutes les variantes anglaises
	ConvertTo      string // format de conversion des sous-titres (srt)
	OutputTemplate string // gabarit de nom de fichier yt-dlp, ex: "%(title)s.%(ext)s"
	NoWarnings     bool   // true => ajouter --no-warnings
	NoProgress     bool
	NoConfig       bool // true => ajouter --no-config pour ignorer les configs utilisateur
}

// NewConfig initialise la configuration standard de yt-dlp. showWarnings
// vient du yaml de config ; subLangs vide retombe sur "en.*".
func NewConfig(showWarnings bool, subLangs string) *Config {
	if subLangs == "" {
		subLangs = "en.*"
	}
	return &Config{
		SubLangs:       subLangs,
		ConvertTo:      "srt",
		OutputTemplate: "%(title)s.%(ext)s",
		NoWarnings:     !showWarnings,
		NoProgress:     true,
		NoConfig:       true, // ignorer les fichiers de config extérieurs (plus prévisible)
	}
}

// BuildArgs construit la slice d'arguments du mode standard.
// workDir est passé via --paths pour que le fichier .srt atterrisse dans le
// répertoire de travail temporaire et pas dans le cwd de l'utilisateur.
func (c *Config) BuildArgs(url, workDir string) []string {
	args := make([]string, 0, 16)
	// mettre --no-config en tête pour éviter que des configs locales modifient le comportement
	if c.NoConfig {
		args = append(args, "--no-config")
	}
	args = append(args,
		"--skip-download",
		"--write-auto-subs",
		"--sub-langs", c.SubLangs,
		"--convert-subs", c.ConvertTo,
	)
	if c.NoWarnings {
		args = append(args, "--no-warnings")
	}
	if c.NoProgress {
		args = append(args, "--no-progress")
	}
	if workDir != "" {
		args = append(args, "--paths", workDir)
	}
	args = append(args, "--output", c.OutputTemplate, url)
	return args
}

// FallbackArgs construit le jeu d'options minimal du mode dégradé : le moins
// de flags possible, une seule langue, pas de conversion. Utilisé en dernier
// recours quand YouTube rejette les requêtes standard avec un 429.
func (c *Config) FallbackArgs(url, workDir string) []string {
	args := []string{
		"--skip-download",
		"--write-auto-subs",
		"--sub-langs", "en",
		"--convert-subs", c.ConvertTo,
	}
	if workDir != "" {
		args = append(args, "--paths", workDir)
	}
	args = append(args, "--output", c.OutputTemplate, url)
	return args
}
