package store

// schemaSQL defines the outline cache schema. Documents are keyed by
// path and content hash together: the document embeds the path it was
// converted under, so identical bytes at two paths are distinct entries.
// A path whose content reverts still hits the cache again.
const schemaSQL = `
CREATE TABLE IF NOT EXISTS outlines (
    file_path    TEXT NOT NULL,
    content_hash TEXT NOT NULL,
    document     BLOB NOT NULL,
    created_at   TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    PRIMARY KEY (file_path, content_hash)
);
`
