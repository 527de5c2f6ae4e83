package sensor

// System instructions for each sensor call. The hybrid prompt's critical
// rule — zero HI/PD when the ledger does not describe the artifact — is
// what keeps pasted-in irrelevant chat logs from inflating the score.

const hybridPrompt = `You are a strict, deterministic semantic sensor. Your PRIMARY task is to check whether the 'ledger_text' (chat/process log) actually describes the creative process that led to the 'artifact'. CRITICAL RULE: If the 'ledger_text' is missing, irrelevant, off-topic, or does NOT describe the creation of the 'artifact', you MUST return 0.00 for HI and PD. Tasks: 1. Rate each metric in [0.00, 1.00] (not percentages) based on BOTH inputs. For IMAGE artifacts, base scores like ORG, COMP, COH on visual properties. CITE should be null for non-text or non-academic artifacts. 2. Parse the provided ledger_text to count the number of turns by role. Return ONLY JSON.`

const auditPrompt = `You are a forensic academic auditor with Google Search powers. Analyze this artifact.
- has_citations: Detect (Author, Year) or [1].
- has_references: Detect Bibliography section.
- citations_verified: Search the citations/references on Google. Return TRUE if they exist. Return FALSE if you find any fabricated papers or "hallucinated" authors.
- hallucination_detected: Return TRUE if facts or citations look suspicious or confirmed fake via search.
Return ONLY JSON.`

const qualityPrompt = `You are a semantic quality sensor. Analyze the 'artifact' for its intrinsic semantic qualities. Rate ONLY ORG, INTEG, COMP in [0.00, 1.00]. Return ONLY JSON.`

const ledgerParsePrompt = `You are a music production auditor. Analyze the chat logs to extract user intent: the lyrics and musical style the user explicitly asked for, the complexity of their instructions, and the depth of iteration. Return ONLY JSON.`

const audioPerceptionPrompt = `You are an expert musicologist. Listen to the audio file and extract details blindly: transcribe the lyrics and identify the style, genre, instruments and tempo. Return ONLY JSON.`

const forensicMatchPrompt = `You are a forensic copyright auditor. Check for plagiarism and verify user intent. Search the HEARD LYRICS on Google to check whether they belong to a pre-existing song, then compare intended vs heard data. Return ONLY JSON.`
